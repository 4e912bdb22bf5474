package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "gdpchart/internal/platform/errors"
	pnet "gdpchart/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"x": 1}, "req-1")
	if status != http.StatusOK {
		t.Fatalf("status %d want %d", status, http.StatusOK)
	}
	if w.StatusCode != http.StatusOK || w.Status != http.StatusText(http.StatusOK) {
		t.Fatalf("wire status mismatch: %+v", w)
	}
	if w.RequestID != "req-1" {
		t.Fatalf("req id %q", w.RequestID)
	}
	if got, ok := w.Data.(map[string]any)["x"]; !ok || got != 1 {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestAcceptedAndNoContent(t *testing.T) {
	if status, w := pnet.Accepted("gen-1", "r"); status != http.StatusAccepted || w.Data != "gen-1" {
		t.Fatalf("Accepted = %d %+v", status, w)
	}
	if status, w := pnet.NoContent("r"); status != http.StatusNoContent || w.Data != nil {
		t.Fatalf("NoContent = %d %+v", status, w)
	}
}

func TestError(t *testing.T) {
	err := perr.WithField(perr.InvalidArgf("width must be positive"), "width")
	status, w := pnet.Error(err, "req-9")
	if status != http.StatusUnprocessableEntity || w.StatusCode != status {
		t.Fatalf("status = %d", status)
	}
	if w.Code != perr.ErrorCodeInvalidArgument || w.Kind != "invalid_argument" || w.Field != "width" {
		t.Fatalf("wire mismatch: %+v", w)
	}
	if w.Error != "width must be positive" || w.RequestID != "req-9" {
		t.Fatalf("wire mismatch: %+v", w)
	}

	if status, _ := pnet.Error(nil, ""); status != http.StatusOK {
		t.Fatalf("Error(nil) = %d", status)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"foreign", errors.New("boom"), http.StatusInternalServerError},
		{"upstream", perr.New(perr.ErrorCodeUpstream, "down"), http.StatusBadGateway},
		{"not ready", perr.NotReadyf("loading"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pnet.HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("want %d got %d", tt.want, got)
			}
		})
	}
}
