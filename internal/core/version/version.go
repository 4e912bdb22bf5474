// Package version provides information about the build version of the service.
package version

import "fmt"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service" example:"gdpchart-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit" example:"abcd123"`
	Date    string `json:"date" example:"2026-10-01"`
}

// Info returns the build information. The variables below are intended to be
// set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'gdpchart/internal/core/version.version=v0.1.0'
	// -X 'gdpchart/internal/core/version.commit=abcd' -X 'gdpchart/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// SetService names the running binary, called once from main
func SetService(name string) {
	if name != "" {
		service = name
	}
}

// String renders the info on one line for -version flags
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.Service, b.Version, b.Commit, b.Date)
}

var (
	service = "gdpchart"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
