// Package http provides http transport for the chart service
package http

import (
	"math"
	stdhttp "net/http"
	"strconv"
	"strings"

	"gdpchart/internal/adapters/render"
	"gdpchart/internal/modkit/httpkit"
	perr "gdpchart/internal/platform/errors"
	"gdpchart/internal/services/chart/domain"
	svc "gdpchart/internal/services/chart/service"
)

// Register mounts chart endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// projection of the loaded dataset
	httpkit.Get(r, "/chart", h.view)

	// rendered documents
	httpkit.GetRaw(r, "/chart.png", h.render(render.PNG))
	httpkit.GetRaw(r, "/chart.svg", h.render(render.SVG))
	httpkit.GetRaw(r, "/chart.xlsx", h.render(render.XLSX))

	// projection of caller supplied data
	httpkit.PostJSON[domain.ProjectInput](r, "/chart/project", h.project)

	// loader lifecycle
	httpkit.Get(r, "/chart/state", h.state)
	httpkit.Post(r, "/chart/reload", h.reload)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /chart Chart chartView
// @Summary Projected chart of the loaded GDP dataset
// @Tags Chart
// @Produce json
// @Param layout query string false "Horizontal layout" Enums(index, time)
// @Param money query string false "Tooltip money format" Enums(adaptive, cents, whole)
// @Param width query number false "Canvas width"
// @Param height query number false "Canvas height"
// @Param padding query number false "Canvas padding"
// @Param from query string false "First date kept, YYYY-MM-DD"
// @Param to query string false "Last date kept, YYYY-MM-DD"
// @Success 200 {object} domain.ChartView "ok"
// @Failure 422 {object} net.Wire "unprojectable dataset or canvas"
// @Failure 502 {object} net.Wire "dataset fetch failed"
// @Failure 503 {object} net.Wire "dataset still loading"
// @Router /chart [get]
func (h *handlers) view(r *stdhttp.Request) (any, error) {
	q, err := chartQuery(r)
	if err != nil {
		return nil, err
	}
	return h.svc.View(r.Context(), q)
}

// swagger:route GET /chart.{format} Chart chartRender
// @Summary Chart rendered as PNG, SVG or XLSX
// @Tags Chart
// @Produce png
// @Produce image/svg+xml
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format path string true "Document format" Enums(png, svg, xlsx)
// @Success 200 {file} file "rendered document"
// @Failure 503 {object} net.Wire "dataset still loading"
// @Router /chart.{format} [get]
func (h *handlers) render(f render.Format) func(*stdhttp.Request) httpkit.Response {
	return func(r *stdhttp.Request) httpkit.Response {
		q, err := chartQuery(r)
		if err != nil {
			return httpkit.Error(err)
		}
		b, err := h.svc.Render(r.Context(), q, f)
		if err != nil {
			return httpkit.Error(err)
		}
		if f == render.XLSX {
			return httpkit.Attachment(f.ContentType(), f.Filename(render.DefaultTitle), b)
		}
		return httpkit.Raw(f.ContentType(), b)
	}
}

// swagger:route POST /chart/project Chart chartProject
// @Summary Project caller supplied observations
// @Tags Chart
// @Accept json
// @Produce json
// @Param payload body domain.ProjectInput true "Observations as [date, value] pairs"
// @Success 200 {object} domain.ChartView "ok"
// @Failure 400 {object} net.Wire "invalid payload"
// @Failure 422 {object} net.Wire "unprojectable data"
// @Router /chart/project [post]
func (h *handlers) project(r *stdhttp.Request, in domain.ProjectInput) (any, error) {
	return h.svc.Project(r.Context(), in)
}

// swagger:route GET /chart/state Chart chartState
// @Summary Dataset loader state
// @Tags Chart
// @Produce json
// @Success 200 {object} domain.StateView "ok"
// @Router /chart/state [get]
func (h *handlers) state(*stdhttp.Request) (any, error) {
	return h.svc.State(), nil
}

// swagger:route POST /chart/reload Chart chartReload
// @Summary Start a new dataset load
// @Description The previous generation keeps running but its result is discarded
// @Tags Chart
// @Produce json
// @Success 202 {object} domain.ReloadView "accepted"
// @Router /chart/reload [post]
func (h *handlers) reload(*stdhttp.Request) (any, error) {
	return httpkit.Accepted(h.svc.Reload()), nil
}

var numericParams = []string{"width", "height", "padding"}

// chartQuery reads overrides from the query string, validation happens in the service
func chartQuery(r *stdhttp.Request) (domain.ChartQuery, error) {
	v := r.URL.Query()
	q := domain.ChartQuery{
		Layout: strings.TrimSpace(v.Get("layout")),
		Money:  strings.TrimSpace(v.Get("money")),
		From:   strings.TrimSpace(v.Get("from")),
		To:     strings.TrimSpace(v.Get("to")),
	}
	dst := []**float64{&q.Width, &q.Height, &q.Padding}
	for i, name := range numericParams {
		s := strings.TrimSpace(v.Get(name))
		if s == "" {
			continue
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return domain.ChartQuery{}, perr.WithField(perr.InvalidArgf("%s must be a number", name), name)
		}
		*dst[i] = &n
	}
	return q, nil
}
