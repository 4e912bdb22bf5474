package chart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterly(fromYear, years int, value func(i int) float64) []Observation {
	months := []string{"01", "04", "07", "10"}
	out := make([]Observation, 0, years*4)
	for i := range years * 4 {
		out = append(out, Observation{
			Date:  fmt.Sprintf("%d-%s-01", fromYear+i/4, months[i%4]),
			Value: value(i),
		})
	}
	return out
}

func TestBuild_AxesShareBarScales(t *testing.T) {
	c, err := Build(gdp1947, Options{Canvas: Canvas{Width: 800, Height: 600, Padding: 60}})
	require.NoError(t, err)

	assert.Equal(t, c.Horizontal, c.Axes.Bottom.Scale)
	assert.Equal(t, c.Vertical, c.Axes.Left.Scale)
	assert.Equal(t, Bottom, c.Axes.Bottom.Orientation)
	assert.Equal(t, Left, c.Axes.Left.Orientation)

	assert.InDelta(t, 60, c.Axes.Left.Offset, 1e-9)
	assert.InDelta(t, c.Canvas.Baseline(), c.Axes.Bottom.Offset, 1e-9)
}

func TestBuild_LeftTicksMatchBarTops(t *testing.T) {
	c, err := Build(gdp1947, Options{Canvas: Canvas{Width: 800, Height: 600, Padding: 60}})
	require.NoError(t, err)

	// a tick at a bar's value lines up with that bar's top edge
	for i, b := range c.Bars {
		v := c.Observations[i].Value
		assert.InDelta(t, b.Y, c.Axes.Left.Position(v), 1e-9, "bar %d", i)
	}

	ticks := c.Axes.Left.Ticks(10)
	require.NotEmpty(t, ticks)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.InDelta(t, c.Canvas.Baseline(), ticks[0].Position, 1e-9)
	assert.Equal(t, "0", ticks[0].Label)
	for i := 1; i < len(ticks); i++ {
		assert.Less(t, ticks[i].Position, ticks[i-1].Position)
	}
}

func TestBuild_IndexLayoutLabelsYears(t *testing.T) {
	obs := quarterly(1947, 3, func(i int) float64 { return 240 + float64(i) })
	c, err := Build(obs, DefaultOptions())
	require.NoError(t, err)

	ticks := c.Axes.Bottom.Ticks(10)
	require.Len(t, ticks, 3)
	for i, tk := range ticks {
		assert.Equal(t, fmt.Sprint(1947+i), tk.Label)
		// the tick lands exactly on the first bar of its year
		assert.InDelta(t, c.Bars[i*4].X, tk.Position, 1e-9)
	}
}

func TestBuild_TimeLayoutTicksAreYears(t *testing.T) {
	obs := quarterly(1950, 20, func(i int) float64 { return float64(i) })
	c, err := Build(obs, Options{Layout: LayoutTime})
	require.NoError(t, err)

	ticks := c.Axes.Bottom.Ticks(10)
	require.NotEmpty(t, ticks)
	assert.Equal(t, "1950", ticks[0].Label)
	assert.InDelta(t, c.Bars[0].X, ticks[0].Position, 1e-9)
	for _, tk := range ticks {
		assert.Equal(t, IntegerFormat(tk.Value), tk.Label)
	}
}

func TestBuild_DefaultsFillZeroOptions(t *testing.T) {
	c, err := Build(gdp1947, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultCanvas(), c.Canvas)
	assert.Equal(t, LayoutIndex, c.Layout)
	assert.Equal(t, [2]float64{0, DefaultStep}, c.Horizontal.Domain)
}

func TestAxisFormats(t *testing.T) {
	assert.Equal(t, "1950", IntegerFormat(1949.6))
	assert.Equal(t, "0.3", NumberFormat(0.3))
	assert.Equal(t, "240", NumberFormat(240))
}
