package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/snowid/internal/pkg/pkgerror"
)

type echoResponse struct {
	Value string `json:"value"`
}

func (echoResponse) Message() string {
	return "echoed"
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Message
}

func TestRouterSuccessEnvelope(t *testing.T) {
	r := NewRouter(&staticGenerator{value: "cid-1"})
	r.GET("/echo", func(ctx context.Context, _ *http.Request) (any, error) {
		return echoResponse{Value: "hello"}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/echo", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Message string       `json:"message"`
		Data    echoResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "echoed" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
	if body.Data.Value != "hello" {
		t.Fatalf("unexpected data: %q", body.Data.Value)
	}
}

func TestRouterErrorCodec(t *testing.T) {
	r := NewRouter(&staticGenerator{value: "cid-2"})
	r.GET("/unavailable", func(context.Context, *http.Request) (any, error) {
		return nil, pkgerror.NewUnavailable(errors.New("clock moved backwards"))
	})
	r.GET("/plain", func(context.Context, *http.Request) (any, error) {
		return nil, errors.New("boom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/unavailable", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Service temporarily unavailable" {
		t.Fatalf("unexpected message: %q", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/plain", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Internal server error" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestRouterBuiltinRoutes(t *testing.T) {
	r := NewRouter(&staticGenerator{value: "cid-3"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "hi from snowid" {
		t.Fatalf("unexpected greeting: %q", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "server is running well" {
		t.Fatalf("unexpected health message: %q", got)
	}
}

func TestRouterNotFoundAndMethodNotAllowed(t *testing.T) {
	r := NewRouter(&staticGenerator{value: "cid-4"})
	r.POST("/reset", func(context.Context, *http.Request) (any, error) {
		return nil, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "endpoint not found" {
		t.Fatalf("unexpected message: %q", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/reset", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "method not allowed" {
		t.Fatalf("unexpected message: %q", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "http://example.com/reset", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for nil payload, got %d", rec.Code)
	}
}
