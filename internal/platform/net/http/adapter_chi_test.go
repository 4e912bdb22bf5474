package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func header(k string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(k, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func text(s string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte(s)) }
}

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(header("X-Root"))
	r.Get("/root", text("root"))
	r.Head("/root", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusNoContent) })

	r.Group(func(gr Router) {
		gr.Use(header("X-Group"))
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Get("/g/ping", text("g"))
	})

	r.Route("/api", func(sr Router) {
		sr.Use(header("X-Route"))
		sr.Post("/ping", text("pong"))
		sr.Handle("/raw", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			_, _ = w.Write([]byte("raw"))
		}))
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr
	}

	rr := do(stdhttp.MethodGet, "/root")
	if rr.Code != 200 || rr.Body.String() != "root" || rr.Header().Get("X-Root") != "1" {
		t.Fatalf("/root => %d %q %v", rr.Code, rr.Body.String(), rr.Header())
	}
	if rr.Header().Get("X-Group") != "" {
		t.Fatalf("group middleware leaked to root route")
	}
	if rr := do(stdhttp.MethodHead, "/root"); rr.Code != stdhttp.StatusNoContent {
		t.Fatalf("HEAD /root => %d", rr.Code)
	}

	rr = do(stdhttp.MethodGet, "/g/ping")
	if rr.Body.String() != "g" || rr.Header().Get("X-Group") != "1" || rr.Header().Get("X-Root") != "1" {
		t.Fatalf("/g/ping => %q %v", rr.Body.String(), rr.Header())
	}

	rr = do(stdhttp.MethodPost, "/api/ping")
	if rr.Body.String() != "pong" || rr.Header().Get("X-Route") != "1" {
		t.Fatalf("/api/ping => %q %v", rr.Body.String(), rr.Header())
	}
	if rr := do(stdhttp.MethodGet, "/api/raw"); rr.Body.String() != "raw" {
		t.Fatalf("/api/raw => %q", rr.Body.String())
	}
	if rr := do(stdhttp.MethodGet, "/api/ping"); rr.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("GET /api/ping => %d, want 405", rr.Code)
	}
}

func TestAdaptChi_FallbacksStayInTheirScope(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Get("/page", text("page"))
	r.Route("/api", func(sr Router) {
		sr.NotFound(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusNotFound)
			_, _ = w.Write([]byte("api 404"))
		})
		sr.MethodNotAllowed(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusMethodNotAllowed)
			_, _ = w.Write([]byte("api 405"))
		})
		sr.Get("/ping", text("pong"))
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr
	}

	if rr := do(stdhttp.MethodGet, "/api/nope"); rr.Code != stdhttp.StatusNotFound || rr.Body.String() != "api 404" {
		t.Fatalf("/api/nope => %d %q", rr.Code, rr.Body.String())
	}
	if rr := do(stdhttp.MethodPost, "/api/ping"); rr.Code != stdhttp.StatusMethodNotAllowed || rr.Body.String() != "api 405" {
		t.Fatalf("POST /api/ping => %d %q", rr.Code, rr.Body.String())
	}
	if rr := do(stdhttp.MethodGet, "/nope"); rr.Code != stdhttp.StatusNotFound || rr.Body.String() == "api 404" {
		t.Fatalf("/nope => %d %q, want the default 404", rr.Code, rr.Body.String())
	}
}
