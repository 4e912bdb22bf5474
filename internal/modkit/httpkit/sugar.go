package httpkit

import (
	"net/http"

	phttp "gdpchart/internal/platform/net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler and uses the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// PostJSON binds and validates T from the body before calling h
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// GetRaw mounts a return-style handler under GET, for images and downloads
func GetRaw(r Router, path string, h func(*http.Request) Response) {
	phttp.GetResponse(r, path, h)
}
