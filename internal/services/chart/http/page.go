package http

import (
	"bytes"
	"html/template"
	stdhttp "net/http"

	"gdpchart/internal/modkit/httpkit"
	perr "gdpchart/internal/platform/errors"
	"gdpchart/internal/platform/logger"
	"gdpchart/internal/services/chart/domain"
	svc "gdpchart/internal/services/chart/service"
)

// the chart area holds exactly one of loading, the error text or the image
var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .Pending}}
<meta http-equiv="refresh" content="2">
{{- end}}
<style>
body { font-family: sans-serif; background: #f4f4f4; margin: 0; }
main { max-width: {{.Width}}px; margin: 2rem auto; background: #fff; padding: 1rem; }
#chart { min-height: {{.Height}}px; display: flex; align-items: center; justify-content: center; }
.error { color: #b00020; }
footer { color: #666; font-size: .8rem; }
</style>
</head>
<body>
<main>
<h1 id="title">{{.Title}}</h1>
<section id="chart">
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- else if .Pending}}
<p class="loading">loading...</p>
{{- else}}
<img src="{{.Image}}" width="{{.Width}}" height="{{.Height}}" alt="{{.Title}} bar chart">
{{- end}}
</section>
{{- if .Source}}
<footer>{{.Description}} Source: {{.Source}}</footer>
{{- end}}
</main>
</body>
</html>
`))

type page struct {
	Title       string
	Description string
	Source      string
	Pending     bool
	Error       string
	Image       string
	Width       float64
	Height      float64
}

// RegisterPage mounts the HTML page at "/", image is the SVG endpoint it embeds
func RegisterPage(r httpkit.Router, s svc.Service, image string) {
	r.Get("/", httpkit.Handle(func(req *stdhttp.Request) httpkit.Response {
		b, err := renderPage(req, s, image)
		if err != nil {
			logger.C(req.Context()).Error().Err(err).Msg("page render failed")
			return httpkit.Error(perr.Wrap(err, perr.ErrorCodeRender, "page render failed"))
		}
		return httpkit.Raw("text/html; charset=utf-8", b)
	}))
}

func renderPage(req *stdhttp.Request, s svc.Service, image string) ([]byte, error) {
	f := s.Frame()
	p := page{Title: f.Title, Width: f.Canvas.Width, Height: f.Canvas.Height}
	v, err := s.View(req.Context(), domain.ChartQuery{})
	switch {
	case perr.IsCode(err, perr.ErrorCodeNotReady):
		p.Pending = true
	case err != nil:
		p.Error = svc.Message(err)
	default:
		p.Title, p.Description, p.Source = v.Title, v.Description, v.Source
		p.Width, p.Height = v.Canvas.Width, v.Canvas.Height
		p.Image = image + "?generation=" + v.Generation
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
