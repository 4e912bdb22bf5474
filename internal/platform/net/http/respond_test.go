package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "gdpchart/internal/platform/errors"
	pnet "gdpchart/internal/platform/net"
	phttp "gdpchart/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSONAndBlob(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}

	rec2 := httptest.NewRecorder()
	phttp.Blob(rec2, http.StatusOK, "image/png", []byte{0x89, 'P', 'N', 'G'})
	if rec2.Header().Get("Content-Type") != "image/png" || rec2.Header().Get("Content-Length") != "4" {
		t.Fatalf("blob headers = %v", rec2.Header())
	}
}

func TestRespondOKNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.RespondOK(rec, req, map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}

	recN := httptest.NewRecorder()
	phttp.RespondNoContent(recN, req)
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("RespondNoContent code=%d body=%q", recN.Code, recN.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/err", "rid-3")
	phttp.RespondError(rec, req, perr.New(perr.ErrorCodeUpstream, "Request failed with errorCode: 500"))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeUpstream || env.Kind != "upstream" || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}
	if env.Error != "Request failed with errorCode: 500" {
		t.Fatalf("error = %q", env.Error)
	}
}

func TestReturnStyle_OKAcceptedNoContent(t *testing.T) {
	cases := []struct {
		resp phttp.Response
		want int
	}{
		{phttp.OK(map[string]any{"x": 1}), http.StatusOK},
		{phttp.Accepted("gen"), http.StatusAccepted},
		{phttp.Response{Body: "zero status"}, http.StatusOK},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		phttp.Handle(func(*http.Request) phttp.Response { return c.resp })(rec, reqWithReqID("GET", "/", "rid-4"))
		if rec.Code != c.want {
			t.Fatalf("code = %d, want %d", rec.Code, c.want)
		}
		var env phttp.Envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.StatusCode != c.want {
			t.Fatalf("envelope = %+v err=%v", env, err)
		}
	}

	recN := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() })(recN, reqWithReqID("POST", "/", "r"))
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("NoContent code=%d body=%q", recN.Code, recN.Body.String())
	}
}

func TestReturnStyle_ErrorAndHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.NotReadyf("dataset loading"))
	})(rec, reqWithReqID("GET", "/err", "rid-7"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("handle error code: %d", rec.Code)
	}

	rec2 := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		resp := phttp.OK("hello")
		resp.Header = http.Header{}
		resp.Header.Set("X-Thing", "yup")
		return resp
	})(rec2, reqWithReqID("GET", "/hdr", "rid-8"))
	if got := rec2.Header().Get("X-Thing"); got != "yup" {
		t.Fatalf("expected header override, got %q", got)
	}

	rec3 := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(errors.New("boom"))
	})(rec3, reqWithReqID("GET", "/gen", "rid-9"))
	if rec3.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for generic error, got %d", rec3.Code)
	}
}

func TestReturnStyle_RawAndAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Raw("image/svg+xml", []byte("<svg/>"))
	})(rec, reqWithReqID("GET", "/chart.svg", "r"))
	if rec.Code != http.StatusOK || rec.Body.String() != "<svg/>" {
		t.Fatalf("raw = %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("content type = %q", rec.Header().Get("Content-Type"))
	}

	rec2 := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Attachment("application/octet-stream", "gdp.xlsx", []byte("PK"))
	})(rec2, reqWithReqID("GET", "/chart.xlsx", "r"))
	if got := rec2.Header().Get("Content-Disposition"); got != `attachment; filename=gdp.xlsx` {
		t.Fatalf("disposition = %q", got)
	}
}
