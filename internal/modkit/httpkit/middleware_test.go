package httpkit

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_HealthEndpoint(t *testing.T) {
	root := applyStack(http.NotFoundHandler(), CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestCommonStack_RequestReachesHandlerAndIsObserved(t *testing.T) {
	var (
		mu       sync.Mutex
		observed []int
	)
	stack := CommonStack(StackOptions{
		Timeout: time.Second,
		Observe: func(_, _ string, status int, _ time.Duration) {
			mu.Lock()
			observed = append(observed, status)
			mu.Unlock()
		},
	})

	hit := 0
	root := applyStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit++
		w.WriteHeader(http.StatusNoContent)
	}), stack)

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if hit != 1 || rr.Code != http.StatusNoContent {
		t.Fatalf("hit=%d code=%d", hit, rr.Code)
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header")
	}
	if len(observed) != 1 || observed[0] != http.StatusNoContent {
		t.Fatalf("observed = %v", observed)
	}
}

func TestCommonStack_PanicBecomesJSON500(t *testing.T) {
	root := applyStack(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
}
