// Package modkit provides module wiring and core deps
package modkit

import (
	"gdpchart/internal/platform/config"
	"gdpchart/internal/platform/logger"
	"gdpchart/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Metrics *metrics.Metrics
}

// MetricsOrNop returns Metrics, or a throwaway set when the caller left it nil
func (d Deps) MetricsOrNop() *metrics.Metrics {
	if d.Metrics == nil {
		return metrics.Nop()
	}
	return d.Metrics
}
