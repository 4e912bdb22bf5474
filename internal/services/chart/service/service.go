// Package service runs the chart workflows: dataset loading, projection and rendering
package service

import (
	"context"
	"errors"
	"strings"

	"gdpchart/internal/adapters/render"
	"gdpchart/internal/adapters/source/gdp"
	"gdpchart/internal/core/chart"
	"gdpchart/internal/platform/config"
	perr "gdpchart/internal/platform/errors"
	"gdpchart/internal/platform/metrics"
	"gdpchart/internal/platform/net/http/bind"
	pstrings "gdpchart/internal/platform/strings"
	"gdpchart/internal/services/chart/domain"
)

// Service defines the chart service contract
type Service interface {
	domain.ServicePort
}

// Defaults is the projection used when a request does not override it
type Defaults struct {
	Options chart.Options
	Title   string
}

// DefaultsFrom reads CANVAS_*, LAYOUT, MONEY_FORMAT and TITLE from cfg
func DefaultsFrom(cfg config.Conf) Defaults {
	d := Defaults{Options: chart.DefaultOptions(), Title: render.DefaultTitle}
	cv := cfg.Prefix("CANVAS_")
	d.Options.Canvas = chart.Canvas{
		Width:   cv.MayFloat64("WIDTH", d.Options.Canvas.Width),
		Height:  cv.MayFloat64("HEIGHT", d.Options.Canvas.Height),
		Padding: cv.MayFloat64("PADDING", d.Options.Canvas.Padding),
	}
	cfg.MayText("LAYOUT", &d.Options.Layout)
	cfg.MayText("MONEY_FORMAT", &d.Options.Money)
	d.Title = cfg.MayString("TITLE", d.Title)
	return d
}

// Svc implements the chart service
type Svc struct {
	loader   domain.LoaderPort
	defaults Defaults
	m        *metrics.Metrics
}

// New constructs a chart service over loader
func New(loader domain.LoaderPort, defaults Defaults, m *metrics.Metrics) *Svc {
	if loader == nil {
		panic("chart.Service requires a non nil Loader")
	}
	if m == nil {
		m = metrics.Nop()
	}
	if defaults.Title == "" {
		defaults.Title = render.DefaultTitle
	}
	return &Svc{loader: loader, defaults: defaults, m: m}
}

// Frame is the configured title and canvas, known before the dataset loads
func (s *Svc) Frame() domain.FrameView {
	c := s.defaults.Options.Canvas
	if c == (chart.Canvas{}) {
		c = chart.DefaultCanvas()
	}
	return domain.FrameView{Title: s.defaults.Title, Canvas: c}
}

// State describes the loader state
func (s *Svc) State() domain.StateView {
	return StateViewOf(s.loader.State())
}

// StateViewOf flattens a LoadState for clients
func StateViewOf(st domain.LoadState) domain.StateView {
	v := domain.StateView{State: st.Kind()}
	switch st := st.(type) {
	case domain.Loading:
		v.Generation, v.Since = st.Generation, &st.Since
	case domain.Ready:
		v.Generation, v.Since = st.Generation, &st.At
		v.Observations = len(st.Dataset.Observations)
	case domain.Failed:
		v.Generation, v.Since = st.Generation, &st.At
		v.Error = Message(st.Err)
	}
	return v
}

// Reload opens a new load generation without waiting for it
func (s *Svc) Reload() domain.ReloadView {
	return domain.ReloadView{Generation: s.loader.Start()}
}

// View projects the loaded dataset
// Idle kicks off the first load; Idle and Loading answer NotReady, Failed answers its error
func (s *Svc) View(_ context.Context, q domain.ChartQuery) (*domain.ChartView, error) {
	opt, err := s.options(q)
	if err != nil {
		return nil, err
	}
	ds, gen, err := s.ready()
	if err != nil {
		return nil, err
	}
	obs, err := window(ds.Observations, q.From, q.To)
	if err != nil {
		return nil, err
	}
	c, err := s.build(obs, opt)
	if err != nil {
		return nil, err
	}
	v := viewOf(c, opt.Money, s.meta(ds))
	v.Generation = gen
	return v, nil
}

// Render projects the loaded dataset and encodes it as f
func (s *Svc) Render(_ context.Context, q domain.ChartQuery, f render.Format) ([]byte, error) {
	opt, err := s.options(q)
	if err != nil {
		return nil, err
	}
	ds, _, err := s.ready()
	if err != nil {
		return nil, err
	}
	obs, err := window(ds.Observations, q.From, q.To)
	if err != nil {
		return nil, err
	}
	c, err := s.build(obs, opt)
	if err != nil {
		return nil, err
	}
	return s.encode(c, f, s.meta(ds))
}

// Project projects caller supplied data, the loaded dataset is not involved
func (s *Svc) Project(_ context.Context, in domain.ProjectInput) (*domain.ChartView, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	obs, err := gdp.DecodePairs(in.Data)
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeParse, err.Error()), "data")
	}

	opt := s.defaults.Options
	if in.Canvas != nil {
		opt.Canvas = chart.Canvas{Width: in.Canvas.Width, Height: in.Canvas.Height, Padding: in.Canvas.Padding}
	}
	if err := overrideEnums(&opt, in.Layout, in.Money); err != nil {
		return nil, err
	}
	c, err := s.build(obs, opt)
	if err != nil {
		return nil, err
	}
	return viewOf(c, opt.Money, render.Meta{Title: strings.TrimSpace(pstrings.FirstNonBlank(in.Title, s.defaults.Title))}), nil
}

// Build projects obs with the configured defaults, shared with the CLI
func (s *Svc) Build(obs []chart.Observation) (*chart.Chart, error) {
	return s.build(obs, s.defaults.Options)
}

func (s *Svc) build(obs []chart.Observation, opt chart.Options) (*chart.Chart, error) {
	c, err := chart.Build(obs, opt)
	bars := 0
	if c != nil {
		bars = len(c.Bars)
	}
	s.m.Projection(opt.Layout.String(), err, bars)
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

func (s *Svc) encode(c *chart.Chart, f render.Format, m render.Meta) ([]byte, error) {
	b, err := render.Bytes(c, f, m)
	s.m.Render(string(f), err)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeRender, "render %s failed", f)
	}
	return b, nil
}

func (s *Svc) ready() (gdp.Dataset, string, error) {
	switch st := s.loader.State().(type) {
	case domain.Ready:
		return st.Dataset, st.Generation, nil
	case domain.Failed:
		return gdp.Dataset{}, "", st.Err
	case domain.Idle:
		s.loader.Start()
	}
	return gdp.Dataset{}, "", perr.NotReadyf("loading...")
}

func (s *Svc) meta(ds gdp.Dataset) render.Meta {
	return render.Meta{
		Title:       s.defaults.Title,
		Description: ds.Name,
		Source:      ds.SourceName,
		FromDate:    ds.FromDate,
		ToDate:      ds.ToDate,
	}
}

// options validates q and lays it over the defaults
func (s *Svc) options(q domain.ChartQuery) (chart.Options, error) {
	if err := bind.Struct(q); err != nil {
		return chart.Options{}, err
	}
	if q.From != "" && q.To != "" && q.To < q.From {
		return chart.Options{}, perr.WithField(perr.InvalidArgf("to must not be before from"), "to")
	}
	opt := s.defaults.Options
	if q.Width != nil {
		opt.Canvas.Width = *q.Width
	}
	if q.Height != nil {
		opt.Canvas.Height = *q.Height
	}
	if q.Padding != nil {
		opt.Canvas.Padding = *q.Padding
	}
	if err := overrideEnums(&opt, q.Layout, q.Money); err != nil {
		return chart.Options{}, err
	}
	return opt, nil
}

func overrideEnums(opt *chart.Options, layout, money string) error {
	if layout != "" {
		l, err := chart.ParseLayout(layout)
		if err != nil {
			return perr.WithField(perr.InvalidArgf("%s", err.Error()), "layout")
		}
		opt.Layout = l
	}
	if money != "" {
		m, err := chart.ParseMoneyFormat(money)
		if err != nil {
			return perr.WithField(perr.InvalidArgf("%s", err.Error()), "money")
		}
		opt.Money = m
	}
	return nil
}

// window keeps observations dated within [from, to], both optional
// ISO dates compare correctly as strings
func window(obs []chart.Observation, from, to string) ([]chart.Observation, error) {
	if from == "" && to == "" {
		return obs, nil
	}
	out := make([]chart.Observation, 0, len(obs))
	for _, o := range obs {
		if (from == "" || o.Date >= from) && (to == "" || o.Date <= to) {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return nil, perr.Wrapf(chart.ErrEmptyDataset, perr.ErrorCodeEmptyDataset, "no GDP data between %s and %s",
			pstrings.FirstNonBlank(from, "the start"), pstrings.FirstNonBlank(to, "the end"))
	}
	return out, nil
}

func viewOf(c *chart.Chart, money chart.MoneyFormat, m render.Meta) *domain.ChartView {
	return &domain.ChartView{
		Title:       pstrings.FirstNonBlank(m.Title, render.DefaultTitle),
		Description: m.Description,
		Source:      m.Source,
		Layout:      c.Layout,
		Money:       money,
		Canvas:      c.Canvas,
		Domain:      c.Domain,
		Bars:        c.Bars,
		Axes: domain.AxesView{
			Bottom: axisView(c.Axes.Bottom),
			Left:   axisView(c.Axes.Left),
		},
	}
}

func axisView(a chart.AxisDescriptor) domain.AxisView {
	return domain.AxisView{
		Orientation: a.Orientation,
		Offset:      a.Offset,
		Domain:      a.Scale.Domain,
		Range:       a.Scale.Range,
		Ticks:       a.Ticks(chart.TickCount),
	}
}

// classify maps engine errors onto perr codes, anything already coded passes through
func classify(err error) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	var (
		pe *chart.ParseError
		ve *chart.ValueError
		ce *chart.CanvasError
	)
	switch {
	case errors.Is(err, chart.ErrEmptyDataset):
		return perr.Wrap(err, perr.ErrorCodeEmptyDataset, "GDP data is empty")
	case errors.As(err, &pe), errors.As(err, &ve):
		return perr.Wrap(err, perr.ErrorCodeParse, Message(err))
	case errors.As(err, &ce):
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, Message(err)), "canvas")
	default:
		return perr.Wrap(err, perr.ErrorCodeUnknown, "projection failed")
	}
}

// Message is the user facing text of err, without engine prefixes
func Message(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := perr.As(err); ok {
		return e.Message()
	}
	return strings.TrimPrefix(err.Error(), "chart: ")
}
