// Package api provides the HTTP API for the application
package api

import (
	"time"

	"gdpchart/internal/platform/config"
	"gdpchart/internal/platform/metrics"
	phttp "gdpchart/internal/platform/net/http"

	"gdpchart/internal/modkit"
	"gdpchart/internal/modkit/httpkit"
	"gdpchart/internal/modkit/module"

	"gdpchart/internal/services/api/docs"
	metahttp "gdpchart/internal/services/api/meta/http"
	metamod "gdpchart/internal/services/api/meta/module"
	"gdpchart/internal/services/chart/domain"
	charthttp "gdpchart/internal/services/chart/http"
	chartmod "gdpchart/internal/services/chart/module"
)

// chartImage is the document the HTML page embeds
const chartImage = "/api/v1/chart.svg"

// Options are the API options
type Options struct {
	Config         config.Conf
	Metrics        *metrics.Metrics
	EnableSwagger  bool
	EnableProfiler bool
	Preload        bool
	CORSOrigins    []string
	RequestTimeout time.Duration
	SlowRequest    time.Duration

	// Source replaces the configured dataset source, nil reads SOURCE_* keys
	Source domain.Source
}

// OptionsFrom reads API_* and PRELOAD keys of cfg
func OptionsFrom(cfg config.Conf) Options {
	api := cfg.Prefix("API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  api.MayBool("SWAGGER", true),
		EnableProfiler: api.MayBool("PROFILER", false),
		Preload:        cfg.MayBool("PRELOAD", true),
		CORSOrigins:    api.MayCSV("CORS_ORIGINS", nil),
		RequestTimeout: api.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest:    api.MayDuration("SLOW_REQUEST", time.Second),
	}
}

// Mount mounts the API service onto the given router and returns the chart ports
func Mount(r phttp.Router, opt Options) chartmod.Ports {
	if opt.Metrics == nil {
		opt.Metrics = metrics.Nop()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}

	var chart modkit.Module
	if opt.Source != nil {
		chart = chartmod.NewWithSource(deps, opt.Source)
	} else {
		chart = chartmod.New(deps)
	}
	ports := module.MustPortsOf[chartmod.Ports](chart)

	// meta reports readiness of the chart loader
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Checks: []metahttp.Check{{Name: "dataset", Pinger: ports.Loader}},
	}))

	// root middleware covers the page, metrics and docs as well as the API
	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     opt.RequestTimeout,
		SlowRequest: opt.SlowRequest,
		CORSOrigins: opt.CORSOrigins,
		Observe:     opt.Metrics.ObserveHTTP,
	})...)

	phttp.MountSwagger(r, phttp.SwaggerOptions{
		Enabled:  opt.EnableSwagger,
		Instance: docs.SwaggerInfo.InstanceName(),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	r.Handle("/metrics", opt.Metrics.Handler())

	// versioned API
	httpkit.MountAPIV1(r, nil, meta, chart)

	charthttp.RegisterPage(r, ports.Service, chartImage)

	if opt.Preload {
		ports.Loader.Start()
	}
	return ports
}
