package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"gdpchart/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
	Observe     middleware.Observer
}

// CommonStack returns the baseline root middleware slice
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation first so every later log line carries the id
		middleware.RealIP(),
		middleware.RequestID(),

		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest, Observe: o.Observe}),
		middleware.RecoverJSON,

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(o.Timeout),
	}
}
