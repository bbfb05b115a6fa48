package modulehandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/merpara/site/internal/services/web/platform/pagerender"
	"github.com/merpara/site/internal/services/web/platform/requestmeta"
)

func TestNowUsesInjectedClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2031, time.March, 4, 0, 0, 0, 0, time.UTC)
	if got := NewTestBase(at).Now(); !got.Equal(at) {
		t.Fatalf("Now() = %v, want %v", got, at)
	}
	if got := NewBase(requestmeta.SchemePolicy{}, nil).Now(); got.IsZero() {
		t.Fatal("Now() with nil clock returned zero time")
	}
}

func TestLanguageFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	base := NewBase(requestmeta.SchemePolicy{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es-CO")
	if got := base.Language(req).String(); got != "en-US" {
		t.Fatalf("Language() = %q, want %q", got, "en-US")
	}
}

func TestWritePageFallsBackToErrorPage(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("render failed")
	})
	rr := httptest.NewRecorder()
	NewTestBase(time.Now()).WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), pagerender.ModulePage{Page: failing})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "render failed") {
		t.Fatalf("body leaked render error: %q", rr.Body.String())
	}
}

func TestWriteNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase(time.Now()).WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("body missing not-found heading: %q", rr.Body.String())
	}
}
