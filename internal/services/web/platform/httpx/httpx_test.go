package httpx

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/numerals.space/internal/platform/id"
	"github.com/louisbranch/numerals.space/internal/platform/requestctx"
	apperrors "github.com/louisbranch/numerals.space/internal/services/web/platform/errors"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestMethodNotAllowedWritesAllowHeaderAndStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	MethodNotAllowed(http.MethodPost).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/practice/close", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", got, http.MethodPost)
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	var fromContext string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = requestctx.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rr.Header().Get("X-Request-ID")
	if !id.Valid(got) {
		t.Fatalf("X-Request-ID = %q, want uuid", got)
	}
	if fromContext != got {
		t.Fatalf("context request id = %q, want %q", fromContext, got)
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-123")
	}
}

func TestRecoverPanicWritesInternalServerError(t *testing.T) {
	var buffer bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&buffer)
	t.Cleanup(func() { log.SetOutput(previous) })

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/convert/", nil)
	req.Header.Set("X-Request-ID", "req-9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	for _, marker := range []string{"panic recovered", "path=/convert/", "request_id=req-9", "panic=boom"} {
		if !strings.Contains(buffer.String(), marker) {
			t.Fatalf("log missing %q: %q", marker, buffer.String())
		}
	}
}

func TestWriteJSONError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSONError(rr, http.StatusBadRequest, "INVALID_NUMBER", "Please enter a valid positive number"); err != nil {
		t.Fatalf("WriteJSONError() error = %v", err)
	}
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["code"] != "INVALID_NUMBER" || payload["success"] != false {
		t.Fatalf("payload = %v", payload)
	}
}

func TestWriteErrorUsesTypedStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteError(rr, apperrors.E(apperrors.KindNotFound, "missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/practice/close", nil)
	rr := httptest.NewRecorder()
	WriteRedirect(rr, req, "/practice/")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/practice/" {
		t.Fatalf("redirect = %d %q", rr.Code, rr.Header().Get("Location"))
	}

	htmx := httptest.NewRequest(http.MethodPost, "/practice/close", nil)
	htmx.Header.Set("HX-Request", "true")
	rr = httptest.NewRecorder()
	WriteRedirect(rr, htmx, "/practice/")
	if rr.Code != http.StatusOK || rr.Header().Get("HX-Redirect") != "/practice/" {
		t.Fatalf("htmx redirect = %d %q", rr.Code, rr.Header().Get("HX-Redirect"))
	}
}
