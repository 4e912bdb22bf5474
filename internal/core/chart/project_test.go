package chart

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gdp1947 = []Observation{
	{Date: "1947-01-01", Value: 243.1},
	{Date: "1947-04-01", Value: 246.3},
}

func mustParse(t *testing.T, obs []Observation) []ParsedObservation {
	t.Helper()
	p, err := ParseObservations(obs)
	require.NoError(t, err)
	return p
}

func TestComputeDomain(t *testing.T) {
	d, err := ComputeDomain([]Observation{
		{Date: "1948-07-01", Value: 270},
		{Date: "1947-01-01", Value: 243.1},
		{Date: "1949-10-01", Value: 260},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.MinValue)
	assert.Equal(t, 270.0, d.MaxValue)
	assert.Equal(t, 1947, d.MinYear)
	assert.Equal(t, 1949, d.MaxYear)
	assert.InDelta(t, 1947.0, d.MinPeriod, 1e-9)
	assert.InDelta(t, 1949.75, d.MaxPeriod, 1e-9)
}

func TestComputeDomain_EmptyFails(t *testing.T) {
	_, err := ComputeDomain(nil)
	require.ErrorIs(t, err, ErrEmptyDataset)
	_, err = ComputeDomain([]Observation{})
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestComputeDomain_SingleObservation(t *testing.T) {
	d, err := ComputeDomain([]Observation{{Date: "2000-04-01", Value: 10}})
	require.NoError(t, err)
	assert.Equal(t, d.MinYear, d.MaxYear)
	assert.Equal(t, d.MinPeriod, d.MaxPeriod)
}

func TestProject_EmptyIsValid(t *testing.T) {
	p := DefaultOptions().Projector()
	bars := p.Project(nil, Domain{})
	require.NotNil(t, bars)
	assert.Empty(t, bars)
}

// heights are the scaled value minus the scaled zero, so a bar is 473.8 tall at y 66.2
// rather than the raw scale output of 533.8; only this keeps bars on the baseline and zero values flat
func TestProject_1947HeightsMeasuredFromBaseline(t *testing.T) {
	p := Projector{Canvas: Canvas{Width: 800, Height: 600, Padding: 60}}
	obs := mustParse(t, gdp1947)
	d, err := computeDomain(obs)
	require.NoError(t, err)

	h, v := p.Scales(d, len(obs))
	assert.InDelta(t, 540, v.Apply(246.3), 1e-9)
	assert.Equal(t, [2]float64{60, 540}, v.Range)
	assert.Equal(t, [2]float64{0, 10}, h.Domain)
	assert.Equal(t, [2]float64{60, 780}, h.Range)

	bars := p.Project(obs, d)
	require.Len(t, bars, 2)

	assert.InDelta(t, 533.764, v.Apply(243.1), 1e-3)
	want0 := v.Apply(243.1) - v.Apply(0)
	assert.InDelta(t, 473.764, want0, 1e-3)
	assert.InDelta(t, want0, bars[0].Height, 1e-9)
	assert.InDelta(t, 540-want0, bars[0].Y, 1e-9)
	assert.InDelta(t, 60, bars[0].X, 1e-9)
	assert.Equal(t, "$243.1 Billion 1947 Q1", bars[0].Tooltip)

	assert.InDelta(t, 480, bars[1].Height, 1e-9)
	assert.InDelta(t, 60, bars[1].Y, 1e-9)
	assert.InDelta(t, 780, bars[1].X, 1e-9)
	assert.Equal(t, "$246.3 Billion 1947 Q2", bars[1].Tooltip)

	assert.InDelta(t, 360, bars[0].Width, 1e-9)
}

func TestProject_BarsSitOnBaseline(t *testing.T) {
	canvas := Canvas{Width: 640, Height: 400, Padding: 25}
	var obs []Observation
	for i := range 40 {
		year := 1990 + i/4
		month := []string{"01", "04", "07", "10"}[i%4]
		obs = append(obs, Observation{Date: fmt.Sprintf("%d-%s-01", year, month), Value: float64((i * 37) % 101)})
	}
	for _, layout := range []Layout{LayoutIndex, LayoutTime} {
		c, err := Build(obs, Options{Canvas: canvas, Layout: layout})
		require.NoError(t, err)
		require.Len(t, c.Bars, len(obs))
		for i, b := range c.Bars {
			assert.GreaterOrEqual(t, b.Height, 0.0, "bar %d", i)
			assert.LessOrEqual(t, b.Height, canvas.PlotHeight()+1e-9, "bar %d", i)
			assert.InDelta(t, canvas.Baseline(), b.Y+b.Height, 1e-9, "bar %d", i)
		}
	}
}

func TestProject_PreservesInputOrder(t *testing.T) {
	obs := []Observation{
		{Date: "1960-07-01", Value: 3},
		{Date: "1950-01-01", Value: 1},
		{Date: "1955-04-01", Value: 2},
	}
	c, err := Build(obs, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, c.Bars, 3)
	assert.Contains(t, c.Bars[0].Tooltip, "1960 Q3")
	assert.Contains(t, c.Bars[1].Tooltip, "1950 Q1")
	assert.Contains(t, c.Bars[2].Tooltip, "1955 Q2")
	assert.Less(t, c.Bars[0].X, c.Bars[1].X)
	assert.Less(t, c.Bars[1].X, c.Bars[2].X)
}

func TestProject_ZeroValueIsZeroHeight(t *testing.T) {
	c, err := Build([]Observation{
		{Date: "2001-01-01", Value: 0},
		{Date: "2001-04-01", Value: 50},
	}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Bars[0].Height)
	assert.Equal(t, c.Canvas.Baseline(), c.Bars[0].Y)
}

func TestProject_AllZeroValues(t *testing.T) {
	c, err := Build([]Observation{
		{Date: "2001-01-01", Value: 0},
		{Date: "2001-04-01", Value: 0},
	}, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, c.Vertical.Degenerate())
	for _, b := range c.Bars {
		assert.Equal(t, 0.0, b.Height)
	}
}

func TestProject_SingleObservation(t *testing.T) {
	c, err := Build([]Observation{{Date: "2000-07-01", Value: 10}}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, c.Bars, 1)
	assert.True(t, c.Horizontal.Degenerate())
	assert.Equal(t, c.Horizontal.Apply(0), c.Bars[0].X)
	assert.Equal(t, c.Canvas.Padding, c.Bars[0].X)
	assert.InDelta(t, c.Canvas.PlotHeight(), c.Bars[0].Height, 1e-9)
}

func TestProject_TimeLayout(t *testing.T) {
	obs := []Observation{
		{Date: "1947-01-01", Value: 1},
		{Date: "1947-07-01", Value: 2},
		{Date: "1948-10-01", Value: 3},
	}
	c, err := Build(obs, Options{Canvas: Canvas{Width: 800, Height: 600, Padding: 60}, Layout: LayoutTime})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1947, 1948.75}, c.Horizontal.Domain)
	assert.InDelta(t, 60, c.Bars[0].X, 1e-9)
	assert.InDelta(t, 60+0.5/1.75*720, c.Bars[1].X, 1e-9)
	assert.InDelta(t, 780, c.Bars[2].X, 1e-9)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(nil, DefaultOptions())
	require.ErrorIs(t, err, ErrEmptyDataset)

	_, err = Build([]Observation{{Date: "1947-01-01", Value: 1}, {Date: "1947/04/01", Value: 2}}, DefaultOptions())
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Index)

	_, err = Build(gdp1947, Options{Canvas: Canvas{Width: 800, Height: 100, Padding: 50}})
	var ce *CanvasError
	require.True(t, errors.As(err, &ce))
}

func TestCanvas_Validate(t *testing.T) {
	require.NoError(t, DefaultCanvas().Validate())
	require.NoError(t, Canvas{Width: 800, Height: 600, Padding: 0}.Validate())
	for _, c := range []Canvas{
		{Width: 0, Height: 600, Padding: 60},
		{Width: 800, Height: -1, Padding: 60},
		{Width: 800, Height: 600, Padding: -1},
		{Width: 800, Height: 120, Padding: 60},
		{Width: 80, Height: 600, Padding: 60},
	} {
		assert.Error(t, c.Validate(), "%+v", c)
	}
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutIndex, l)
	l, err = ParseLayout(" Time ")
	require.NoError(t, err)
	assert.Equal(t, LayoutTime, l)
	_, err = ParseLayout("log")
	require.Error(t, err)
	assert.Equal(t, "index", LayoutIndex.String())
}
