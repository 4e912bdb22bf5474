package chart

import (
	"math"
	"strconv"
)

// Orientation names the side an axis is drawn on
type Orientation string

const (
	// Bottom is the horizontal axis under the plot
	Bottom Orientation = "bottom"
	// Left is the vertical axis beside the plot
	Left Orientation = "left"
)

// TickCount is the tick hint every consumer hands to Ticks, so the JSON view and the images agree
const TickCount = 10

// TickFormat renders a tick value as a label
type TickFormat func(float64) string

// TickValues picks tick values for a requested count
type TickValues func(count int) []float64

// IntegerFormat prints values rounded to whole numbers, d3 "d"
func IntegerFormat(v float64) string { return strconv.FormatFloat(math.Round(v), 'f', 0, 64) }

// NumberFormat prints the shortest representation of v
func NumberFormat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Tick is one resolved axis tick
type Tick struct {
	Value    float64 `json:"value"`
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// AxisDescriptor hands an axis its scale and formatting
// Scale is the same value the bars were projected with
type AxisDescriptor struct {
	Orientation Orientation `json:"orientation"`
	Scale       LinearScale `json:"scale"`
	// Offset is the screen coordinate of the axis line, y for bottom and x for left
	Offset     float64    `json:"offset"`
	TickFormat TickFormat `json:"-"`
	TickValues TickValues `json:"-"`
}

// Position maps a domain value to its screen coordinate along the axis
// the left axis mirrors the scale inside its range since screen y grows downward
func (a AxisDescriptor) Position(v float64) float64 {
	if a.Orientation == Left {
		return a.Scale.Range[0] + a.Scale.Range[1] - a.Scale.Apply(v)
	}
	return a.Scale.Apply(v)
}

// Ticks resolves about count ticks with positions and labels
func (a AxisDescriptor) Ticks(count int) []Tick {
	var values []float64
	if a.TickValues != nil {
		values = a.TickValues(count)
	} else {
		values = a.Scale.Ticks(count)
	}
	format := a.TickFormat
	if format == nil {
		format = NumberFormat
	}
	out := make([]Tick, 0, len(values))
	for _, v := range values {
		out = append(out, Tick{Value: v, Position: a.Position(v), Label: format(v)})
	}
	return out
}

// Axes is the bottom and left axis pair of a chart
type Axes struct {
	Bottom AxisDescriptor `json:"bottom"`
	Left   AxisDescriptor `json:"left"`
}

// BuildAxes wraps the bar scales into axis descriptors
// bottom labels default to integers and left labels to plain numbers
func BuildAxes(horizontal, vertical LinearScale) Axes {
	left := AxisDescriptor{
		Orientation: Left,
		Scale:       vertical,
		Offset:      horizontal.Range[0],
		TickFormat:  NumberFormat,
	}
	return Axes{
		Bottom: AxisDescriptor{
			Orientation: Bottom,
			Scale:       horizontal,
			Offset:      left.Position(vertical.Domain[0]),
			TickFormat:  IntegerFormat,
		},
		Left: left,
	}
}

// yearTicks places year labels on an index scale
// each tick sits on the first observation of a nicely spaced year
func yearTicks(obs []ParsedObservation, d Domain, step float64) (TickValues, TickFormat) {
	firstIndex := make(map[int]int, d.MaxYear-d.MinYear+1)
	for i, o := range obs {
		if _, ok := firstIndex[o.Year]; !ok {
			firstIndex[o.Year] = i
		}
	}
	values := func(count int) []float64 {
		years := BuildLinearScale(float64(d.MinYear), float64(d.MaxYear), 0, 1).Ticks(count)
		out := make([]float64, 0, len(years))
		for _, y := range years {
			if y != math.Trunc(y) {
				continue
			}
			if i, ok := firstIndex[int(y)]; ok {
				out = append(out, float64(i)*step)
			}
		}
		return out
	}
	format := func(v float64) string {
		i := int(math.Round(v / step))
		if i < 0 || i >= len(obs) {
			return ""
		}
		return strconv.Itoa(obs[i].Year)
	}
	return values, format
}
