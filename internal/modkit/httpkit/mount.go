package httpkit

import (
	"net/http"
	"strings"

	perr "gdpchart/internal/platform/errors"
	pnet "gdpchart/internal/platform/net"
	phttp "gdpchart/internal/platform/net/http"
)

// Mounter is anything that can attach its routes to a router, every module.Module is one
type Mounter interface {
	MountRoutes(r Router)
}

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts mods under /api/{version} behind mw
// unknown paths and methods below the prefix answer with the JSON error envelope, not a text 404
//
// example:
//
//	httpkit.MountAPI(r, "v1", nil, meta, chart)
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mods ...Mounter) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, func(api Router) {
		api.NotFound(Handle(func(r *http.Request) Response {
			return Error(perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
		}))
		api.MethodNotAllowed(methodNotAllowed)
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}

// MountAPIV1 is MountAPI with version v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mods ...Mounter) {
	MountAPI(r, "v1", mw, mods...)
}

// methodNotAllowed keeps the 405 status, which no error code maps to
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_, env := pnet.Error(perr.InvalidArgf("%s is not allowed on %s", r.Method, r.URL.Path), pnet.RequestID(r.Context()))
	env.StatusCode, env.Status = http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)
	phttp.JSON(w, http.StatusMethodNotAllowed, env)
}
