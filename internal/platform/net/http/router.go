package http

import "net/http"

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against, implemented over chi by AdaptChi
// NotFound and MethodNotAllowed apply to the router they are called on and its subroutes
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Head(path string, h Handler)
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	NotFound(h Handler)
	MethodNotAllowed(h Handler)

	Mux() http.Handler
}
