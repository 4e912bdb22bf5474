package chart

import (
	"fmt"
	"strings"
)

const (
	// RightInset is the gap kept between the last bar slot and the right edge
	RightInset = 20
	// DefaultStep is the index spacing of the index layout
	DefaultStep = 10
)

// Canvas is the pixel surface every coordinate refers to
type Canvas struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// DefaultCanvas is 800 wide at 16:9 with 60px padding
func DefaultCanvas() Canvas { return Canvas{Width: 800, Height: 450, Padding: 60} }

// Baseline returns the y coordinate bars stand on
func (c Canvas) Baseline() float64 { return c.Height - c.Padding }

// PlotHeight returns the tallest bar the canvas can hold
func (c Canvas) PlotHeight() float64 { return c.Height - 2*c.Padding }

// Validate rejects canvases without a positive plot area
func (c Canvas) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return &CanvasError{Canvas: c, Reason: "width and height must be positive"}
	case c.Padding < 0:
		return &CanvasError{Canvas: c, Reason: "padding must not be negative"}
	case 2*c.Padding >= c.Height:
		return &CanvasError{Canvas: c, Reason: "padding leaves no vertical room"}
	case c.Padding+RightInset >= c.Width:
		return &CanvasError{Canvas: c, Reason: "padding leaves no horizontal room"}
	}
	return nil
}

// Layout selects how bars are spread horizontally
type Layout uint8

const (
	// LayoutIndex spaces bars uniformly by position in the input
	LayoutIndex Layout = iota
	// LayoutTime places bars at their fractional year
	LayoutTime
)

func (l Layout) String() string {
	switch l {
	case LayoutIndex:
		return "index"
	case LayoutTime:
		return "time"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout resolves a layout name, empty means index
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "index":
		return LayoutIndex, nil
	case "time":
		return LayoutTime, nil
	default:
		return 0, fmt.Errorf("chart: unknown layout %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Layout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Layout) UnmarshalText(b []byte) error {
	v, err := ParseLayout(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// BarDescriptor is one drawable bar, y is the top edge so y+height is the baseline
type BarDescriptor struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Tooltip string  `json:"tooltip"`
}

// Projector turns parsed observations into bars for a canvas
type Projector struct {
	Canvas Canvas
	Layout Layout
	Money  MoneyFormat
	Step   float64
}

func (p Projector) step() float64 {
	if p.Step <= 0 {
		return DefaultStep
	}
	return p.Step
}

// Scales builds the horizontal and vertical scales for n observations over d
func (p Projector) Scales(d Domain, n int) (horizontal, vertical LinearScale) {
	c := p.Canvas
	vertical = BuildLinearScale(d.MinValue, d.MaxValue, c.Padding, c.Height-c.Padding)

	r0, r1 := c.Padding, c.Width-RightInset
	switch p.Layout {
	case LayoutTime:
		horizontal = BuildLinearScale(d.MinPeriod, d.MaxPeriod, r0, r1)
	default:
		last := 0.0
		if n > 1 {
			last = float64(n-1) * p.step()
		}
		horizontal = BuildLinearScale(0, last, r0, r1)
	}
	return horizontal, vertical
}

// Project maps every observation onto a bar, keeping input order
// an empty input yields an empty slice
func (p Projector) Project(obs []ParsedObservation, d Domain) []BarDescriptor {
	h, v := p.Scales(d, len(obs))
	return p.project(obs, h, v)
}

func (p Projector) project(obs []ParsedObservation, h, v LinearScale) []BarDescriptor {
	out := make([]BarDescriptor, 0, len(obs))
	if len(obs) == 0 {
		return out
	}
	width := h.Span() / float64(len(obs))
	base := v.Apply(0)
	for i, o := range obs {
		var x float64
		if p.Layout == LayoutTime {
			x = h.Apply(o.Period())
		} else {
			x = h.Apply(float64(i) * p.step())
		}
		// the vertical range starts at padding, so height is taken from the scaled zero
		height := v.Apply(o.Value) - base
		out = append(out, BarDescriptor{
			X:       x,
			Y:       p.Canvas.Baseline() - height,
			Width:   width,
			Height:  height,
			Tooltip: Tooltip(o, p.Money),
		})
	}
	return out
}
