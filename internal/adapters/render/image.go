package render

import (
	"fmt"
	"io"
	"math"

	"gdpchart/internal/core/chart"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	tickLen   = 6
	fontSize  = 9.0
	titleSize = 14.0
)

var (
	colorBackground = drawing.ColorWhite
	colorBar        = drawing.ColorFromHex("4682b4")
	colorAxis       = drawing.ColorFromHex("333333")
	colorText       = drawing.ColorFromHex("222222")
)

// Image draws c as PNG or SVG into w
func Image(w io.Writer, c *chart.Chart, f Format, m Meta) error {
	var provider gochart.RendererProvider
	switch f {
	case PNG:
		provider = gochart.PNG
	case SVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("render: %s is not an image format", f)
	}

	r, err := provider(px(c.Canvas.Width), px(c.Canvas.Height))
	if err != nil {
		return fmt.Errorf("render: new %s renderer: %w", f, err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("render: load font: %w", err)
	}
	r.SetFont(font)

	fillRect(r, colorBackground, 0, 0, c.Canvas.Width, c.Canvas.Height)
	drawBars(r, c.Bars)
	drawBottomAxis(r, c.Axes.Bottom)
	drawLeftAxis(r, c.Axes.Left)
	drawTitle(r, c.Canvas, m.title())

	if err := r.Save(w); err != nil {
		return fmt.Errorf("render: encode %s: %w", f, err)
	}
	return nil
}

func px(v float64) int { return int(math.Round(v)) }

func fillRect(r gochart.Renderer, col drawing.Color, x, y, w, h float64) {
	x0, y0 := px(x), px(y)
	x1, y1 := px(x+w), px(y+h)
	// thin bars still get one pixel
	if x1 <= x0 {
		x1 = x0 + 1
	}
	r.SetFillColor(col)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

func line(r gochart.Renderer, x0, y0, x1, y1 float64) {
	r.SetStrokeColor(colorAxis)
	r.SetStrokeWidth(1)
	r.MoveTo(px(x0), px(y0))
	r.LineTo(px(x1), px(y1))
	r.Stroke()
}

func drawBars(r gochart.Renderer, bars []chart.BarDescriptor) {
	for _, b := range bars {
		if b.Height <= 0 {
			continue
		}
		fillRect(r, colorBar, b.X, b.Y, b.Width, b.Height)
	}
}

func text(r gochart.Renderer, size float64, s string) gochart.Box {
	r.SetFontColor(colorText)
	r.SetFontSize(size)
	return r.MeasureText(s)
}

func drawBottomAxis(r gochart.Renderer, a chart.AxisDescriptor) {
	y := a.Offset
	line(r, a.Scale.Range[0], y, a.Scale.Range[1], y)
	for _, t := range a.Ticks(chart.TickCount) {
		line(r, t.Position, y, t.Position, y+tickLen)
		box := text(r, fontSize, t.Label)
		r.Text(t.Label, px(t.Position)-box.Width()/2, px(y)+tickLen+2+box.Height())
	}
}

func drawLeftAxis(r gochart.Renderer, a chart.AxisDescriptor) {
	x := a.Offset
	line(r, x, a.Scale.Range[0], x, a.Scale.Range[1])
	for _, t := range a.Ticks(chart.TickCount) {
		line(r, x-tickLen, t.Position, x, t.Position)
		box := text(r, fontSize, t.Label)
		r.Text(t.Label, px(x)-tickLen-3-box.Width(), px(t.Position)+box.Height()/2)
	}
}

func drawTitle(r gochart.Renderer, c chart.Canvas, title string) {
	box := text(r, titleSize, title)
	r.Text(title, px(c.Width/2)-box.Width()/2, px(c.Padding/2)+box.Height()/2)
}
