package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type dto struct {
	N int `json:"n"`
}

func TestSugar_Verbs(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	GetJSON(r, "/g", func(*http.Request) (any, error) {
		return map[string]string{"ok": "get"}, nil
	})
	PostJSON(r, "/p", func(_ *http.Request, in dto) (any, error) {
		return map[string]int{"d": in.N * 2}, nil
	})
	GetResponse(r, "/img", func(*http.Request) Response {
		return Raw("image/png", []byte("png"))
	})
	PostResponse(r, "/reload", func(*http.Request) Response {
		return Accepted(map[string]string{"generation": "g1"})
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	if rr := do(http.MethodGet, "/g", ""); rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"ok":"get"`) {
		t.Fatalf("GET /g => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr := do(http.MethodPost, "/p", `{"n":7}`); rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"d":14`) {
		t.Fatalf("POST /p => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr := do(http.MethodPost, "/p", `{`); rr.Code != http.StatusBadRequest {
		t.Fatalf("POST /p bad json => %d", rr.Code)
	}
	if rr := do(http.MethodGet, "/img", ""); rr.Body.String() != "png" || rr.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("GET /img => %q %v", rr.Body.String(), rr.Header())
	}
	if rr := do(http.MethodPost, "/reload", ""); rr.Code != http.StatusAccepted || !strings.Contains(rr.Body.String(), `"generation":"g1"`) {
		t.Fatalf("POST /reload => %d %q", rr.Code, rr.Body.String())
	}
}
