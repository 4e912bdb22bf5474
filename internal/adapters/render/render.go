// Package render turns projected charts into PNG, SVG and XLSX documents
// it draws the descriptors it is handed and never recomputes layout
package render

import (
	"fmt"
	"strings"
)

// Format names an output document type
type Format string

// Supported formats
const (
	PNG  Format = "png"
	SVG  Format = "svg"
	XLSX Format = "xlsx"
)

// ParseFormat resolves a format name, case insensitive
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG, XLSX:
		return f, nil
	default:
		return "", fmt.Errorf("render: unknown format %q", s)
	}
}

// ContentType returns the media type served for f
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case SVG:
		return "image/svg+xml"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// Filename returns a download name for f, e.g. us-gdp.png
func (f Format) Filename(base string) string {
	base = strings.Trim(strings.ToLower(strings.Join(strings.Fields(base), "-")), "-")
	if base == "" {
		base = "chart"
	}
	return base + "." + string(f)
}

// DefaultTitle captions every chart unless the caller overrides it
const DefaultTitle = "US GDP"

// Meta carries the captions drawn around the chart
type Meta struct {
	Title       string
	Description string
	Source      string
	FromDate    string
	ToDate      string
}

func (m Meta) title() string {
	if strings.TrimSpace(m.Title) == "" {
		return DefaultTitle
	}
	return m.Title
}
