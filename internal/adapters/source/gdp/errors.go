package gdp

import (
	"fmt"

	perr "gdpchart/internal/platform/errors"
)

// Messages shown to users when a fetch fails
const (
	msgStatus = "Request failed with errorCode: %d"
	msgFailed = "Failed to load GDP data"
)

// FetchError is a failed fetch: a non-2xx answer, a transport failure or an undecodable document
// Status is 0 unless the source answered
type FetchError struct {
	Source string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gdp: %s answered %d", e.Source, e.Status)
	}
	return fmt.Sprintf("gdp: %s: %v", e.Source, e.Err)
}

// Unwrap returns the transport or decode cause
func (e *FetchError) Unwrap() error { return e.Err }

// Message returns the user facing text for the failure
func (e *FetchError) Message() string {
	if e.Status != 0 {
		return fmt.Sprintf(msgStatus, e.Status)
	}
	return msgFailed
}

// upstream wraps fe with the upstream code so it maps to 502 and keeps errors.As working
func upstream(fe *FetchError) error {
	return perr.Wrap(fe, perr.ErrorCodeUpstream, fe.Message())
}
