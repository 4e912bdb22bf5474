// Package chart projects a quarterly (date, value) series onto a pixel canvas
//
// The pipeline is pure: parse dates, compute the domain, build linear scales,
// then derive bar and axis descriptors from those same scales. Nothing here
// draws, fetches or logs; renderers consume the returned descriptors as-is.
package chart

// Options configures a projection, zero values fall back to defaults
type Options struct {
	Canvas Canvas      `json:"canvas"`
	Layout Layout      `json:"layout"`
	Money  MoneyFormat `json:"money"`
	Step   float64     `json:"step"`
}

// DefaultOptions returns the index layout on the default canvas
func DefaultOptions() Options {
	return Options{Canvas: DefaultCanvas(), Layout: LayoutIndex, Money: MoneyAdaptive, Step: DefaultStep}
}

func (o Options) withDefaults() Options {
	if o.Canvas == (Canvas{}) {
		o.Canvas = DefaultCanvas()
	}
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	return o
}

// Projector returns the bar projector for these options
func (o Options) Projector() Projector {
	o = o.withDefaults()
	return Projector{Canvas: o.Canvas, Layout: o.Layout, Money: o.Money, Step: o.Step}
}

// Chart is a fully projected dataset
type Chart struct {
	Canvas       Canvas              `json:"canvas"`
	Layout       Layout              `json:"layout"`
	Domain       Domain              `json:"domain"`
	Horizontal   LinearScale         `json:"horizontal"`
	Vertical     LinearScale         `json:"vertical"`
	Bars         []BarDescriptor     `json:"bars"`
	Axes         Axes                `json:"axes"`
	Observations []ParsedObservation `json:"observations"`
}

// Build runs the whole projection for obs
// an empty series fails with ErrEmptyDataset, a bad record with *ParseError or *ValueError
func Build(obs []Observation, opt Options) (*Chart, error) {
	opt = opt.withDefaults()
	if err := opt.Canvas.Validate(); err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, ErrEmptyDataset
	}
	parsed, err := ParseObservations(obs)
	if err != nil {
		return nil, err
	}
	d, err := computeDomain(parsed)
	if err != nil {
		return nil, err
	}

	p := opt.Projector()
	h, v := p.Scales(d, len(parsed))
	axes := BuildAxes(h, v)
	if opt.Layout == LayoutIndex {
		axes.Bottom.TickValues, axes.Bottom.TickFormat = yearTicks(parsed, d, p.step())
	}

	return &Chart{
		Canvas:       opt.Canvas,
		Layout:       opt.Layout,
		Domain:       d,
		Horizontal:   h,
		Vertical:     v,
		Bars:         p.project(parsed, h, v),
		Axes:         axes,
		Observations: parsed,
	}, nil
}
