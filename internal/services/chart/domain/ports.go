package domain

import (
	"context"

	"gdpchart/internal/adapters/render"
	"gdpchart/internal/adapters/source/gdp"
)

// Source supplies whole datasets, implemented by the gdp adapters
type Source interface {
	Fetch(ctx context.Context) (gdp.Dataset, error)
}

// LoaderPort drives the dataset lifecycle
type LoaderPort interface {
	State() LoadState
	Load(ctx context.Context) (gdp.Dataset, error)
	Reload(ctx context.Context) (gdp.Dataset, error)
	Start() string
	Ping(ctx context.Context) error
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	State() StateView
	Reload() ReloadView
	View(ctx context.Context, q ChartQuery) (*ChartView, error)
	Render(ctx context.Context, q ChartQuery, f render.Format) ([]byte, error)
	Project(ctx context.Context, in ProjectInput) (*ChartView, error)
	Frame() FrameView
}
