package http

import (
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SwaggerOptions locates the UI and the document it reads from the swag registry
type SwaggerOptions struct {
	Enabled  bool
	Path     string // default /docs
	Instance string // registered swag instance, default swagger
}

// MountSwagger serves the swagger UI under Path with the document at Path/doc.json
func MountSwagger(r Router, o SwaggerOptions) {
	if !o.Enabled {
		return
	}
	path := "/" + strings.Trim(o.Path, "/")
	if path == "/" {
		path = "/docs"
	}
	if o.Instance == "" {
		o.Instance = "swagger"
	}
	r.Get(path+"/*", httpSwagger.Handler(
		httpSwagger.URL(path+"/doc.json"),
		httpSwagger.InstanceName(o.Instance),
		httpSwagger.DocExpansion("list"),
	))
}
