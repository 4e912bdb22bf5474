package chart

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEmptyDataset is returned when a domain is requested for zero observations
var ErrEmptyDataset = errors.New("chart: empty dataset")

// ParseError reports a date that does not match YYYY-MM-DD
type ParseError struct {
	// Index is the position in the input sequence, -1 for a standalone date
	Index int
	Input string
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("chart: invalid date %q, want YYYY-MM-DD", e.Input)
	}
	return fmt.Sprintf("chart: observation %d: invalid date %q, want YYYY-MM-DD", e.Index, e.Input)
}

// ValueError reports a negative or non finite observation value
type ValueError struct {
	Index int
	Date  string
	Value float64
}

func (e *ValueError) Error() string {
	v := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if e.Index < 0 {
		return fmt.Sprintf("chart: invalid value %s at %s, want a finite number >= 0", v, e.Date)
	}
	return fmt.Sprintf("chart: observation %d: invalid value %s at %s, want a finite number >= 0", e.Index, v, e.Date)
}

// CanvasError reports a canvas that leaves no room to plot
type CanvasError struct {
	Canvas Canvas
	Reason string
}

func (e *CanvasError) Error() string {
	return fmt.Sprintf("chart: invalid canvas %gx%g padding %g: %s",
		e.Canvas.Width, e.Canvas.Height, e.Canvas.Padding, e.Reason)
}

// atIndex stamps a record position onto per observation errors
func atIndex(err error, i int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		c := *pe
		c.Index = i
		return &c
	}
	var ve *ValueError
	if errors.As(err, &ve) {
		c := *ve
		c.Index = i
		return &c
	}
	return err
}
