// Package module wires the chart service into the API using modkit
package module

import (
	"net/http"
	"time"

	"gdpchart/internal/adapters/source/gdp"
	modkit "gdpchart/internal/modkit"
	"gdpchart/internal/modkit/httpkit"
	str "gdpchart/internal/platform/strings"
	"gdpchart/internal/services/chart/domain"
	charthttp "gdpchart/internal/services/chart/http"
	chartsvc "gdpchart/internal/services/chart/service"
)

// Module implements the chart module
type Module struct {
	deps  modkit.Deps
	built modkit.Built

	svc    *chartsvc.Svc
	loader *chartsvc.Loader
}

// New constructs the chart module over the source SOURCE_* keys describe
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWithSource(deps, gdp.Open(gdp.OptionsFrom(deps.Cfg)), opts...)
}

// NewWithSource constructs the chart module over src
func NewWithSource(deps modkit.Deps, src domain.Source, opts ...modkit.Option) *Module {
	m := deps.MetricsOrNop()
	loader := chartsvc.NewLoader(src, m,
		chartsvc.WithTimeout(deps.Cfg.MayDuration("LOAD_TIMEOUT", 30*time.Second)))
	svc := chartsvc.New(loader, chartsvc.DefaultsFrom(deps.Cfg), m)

	mod := &Module{deps: deps, svc: svc, loader: loader}

	// routes passed through WithRegister mount next to the chart routes
	external := modkit.Build(opts...).Register
	defaults := []modkit.Option{
		modkit.WithName("chart"),
		modkit.WithPorts(Ports{Service: svc, Loader: loader}),
	}
	mod.built = modkit.Build(append(append(defaults, opts...), modkit.WithRegister(func(r httpkit.Router) {
		charthttp.Register(r, svc)
		external(r)
	}))...)
	return mod
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix, empty when mounted at the API root
func (m *Module) Prefix() string { return m.built.Prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }
