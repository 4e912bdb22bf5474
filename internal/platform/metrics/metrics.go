// Package metrics owns the process prometheus registry and the domain instruments
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gdpchart"

// Outcome labels
const (
	OK    = "ok"
	Error = "error"
	Stale = "stale"
)

// Metrics bundles the registry with every instrument the service records
// the zero value is not usable, build one with New or Nop
type Metrics struct {
	reg *prometheus.Registry

	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	projectTotal  *prometheus.CounterVec
	projectBars   prometheus.Histogram
	renderTotal   *prometheus.CounterVec
	httpTotal     *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	loaderState   *prometheus.GaugeVec
}

// New builds a private registry with go and process collectors plus the domain instruments
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return register(reg)
}

// Nop builds instruments on a throwaway registry without runtime collectors, handy in tests
func Nop() *Metrics { return register(prometheus.NewRegistry()) }

func register(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		reg: reg,
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "fetch_total",
			Help: "Dataset fetches by outcome",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "fetch_duration_seconds",
			Help:    "Dataset fetch latency",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		projectTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "projection_total",
			Help: "Chart projections by layout and outcome",
		}, []string{"layout", "outcome"}),
		projectBars: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "projection_bars",
			Help:    "Bars produced per successful projection",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		renderTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "render_total",
			Help: "Rendered outputs by format and outcome",
		}, []string{"format", "outcome"}),
		httpTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		loaderState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "loader_state",
			Help: "1 for the dataset loader's current state, 0 for the others",
		}, []string{"state"}),
	}
	reg.MustRegister(
		m.fetchTotal, m.fetchDuration,
		m.projectTotal, m.projectBars,
		m.renderTotal,
		m.httpTotal, m.httpDuration,
		m.loaderState,
	)
	return m
}

// Registry exposes the underlying registry for gathering in tests
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Fetch records one dataset fetch
func (m *Metrics) Fetch(outcome string, elapsed time.Duration) {
	m.fetchTotal.WithLabelValues(outcome).Inc()
	if outcome != Stale {
		m.fetchDuration.Observe(elapsed.Seconds())
	}
}

// Projection records one projection; bars is ignored on failure
func (m *Metrics) Projection(layout string, err error, bars int) {
	if err != nil {
		m.projectTotal.WithLabelValues(layout, Error).Inc()
		return
	}
	m.projectTotal.WithLabelValues(layout, OK).Inc()
	m.projectBars.Observe(float64(bars))
}

// Render records one rendered output
func (m *Metrics) Render(format string, err error) {
	outcome := OK
	if err != nil {
		outcome = Error
	}
	m.renderTotal.WithLabelValues(format, outcome).Inc()
}

// LoaderState flips the state gauge so exactly one of states reads 1
func (m *Metrics) LoaderState(current string, states ...string) {
	for _, s := range states {
		v := 0.0
		if s == current {
			v = 1
		}
		m.loaderState.WithLabelValues(s).Set(v)
	}
}

// ObserveHTTP matches middleware.Observer so the access log can feed request metrics
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.httpTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
