// Package domain holds the chart service states, DTOs and ports
package domain

import (
	"time"

	"gdpchart/internal/adapters/source/gdp"
)

// StateKind names a LoadState variant
type StateKind string

// Load state kinds
const (
	KindIdle    StateKind = "idle"
	KindLoading StateKind = "loading"
	KindReady   StateKind = "ready"
	KindFailed  StateKind = "failed"
)

// Kinds lists every state kind in lifecycle order
func Kinds() []string {
	return []string{string(KindIdle), string(KindLoading), string(KindReady), string(KindFailed)}
}

// LoadState is the dataset lifecycle: Idle, then Loading, then Ready or Failed
// the set of variants is closed, switch on the concrete type
type LoadState interface {
	Kind() StateKind
	isLoadState()
}

// Idle is the state before the first fetch starts
type Idle struct{}

// Loading is an in flight fetch
type Loading struct {
	Generation string
	Since      time.Time
}

// Ready holds a fetched and validated dataset
type Ready struct {
	Generation string
	Dataset    gdp.Dataset
	At         time.Time
}

// Failed holds the error of the latest generation
type Failed struct {
	Generation string
	Err        error
	At         time.Time
}

func (Idle) Kind() StateKind    { return KindIdle }
func (Loading) Kind() StateKind { return KindLoading }
func (Ready) Kind() StateKind   { return KindReady }
func (Failed) Kind() StateKind  { return KindFailed }

func (Idle) isLoadState()    {}
func (Loading) isLoadState() {}
func (Ready) isLoadState()   {}
func (Failed) isLoadState()  {}
