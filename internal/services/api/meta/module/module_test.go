package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	modkit "gdpchart/internal/modkit"
	phttp "gdpchart/internal/platform/net/http"
	metahttp "gdpchart/internal/services/api/meta/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alwaysReady struct{}

func (alwaysReady) Ping(context.Context) error { return nil }

func serve(m *Module, path string) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestModule_MountsUnderMeta(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Checks: []metahttp.Check{{Name: "dataset", Pinger: alwaysReady{}}}})).(*Module)
	assert.Equal(t, "meta", m.Name())

	rec := serve(m, "/meta/ready")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"dataset","status":"ok"`)
}

func TestModule_CustomPrefix(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPrefix("/_meta")).(*Module)
	assert.Equal(t, "/_meta", m.Prefix())
	assert.Equal(t, http.StatusOK, serve(m, "/_meta/health").Code)
}
