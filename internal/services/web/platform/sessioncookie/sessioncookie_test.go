package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	platformid "github.com/merpara/site/internal/platform/id"
	"github.com/merpara/site/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://merpara.test", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	id, err := platformid.NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: id})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != id {
		t.Fatalf("value = %q, want %q", value, id)
	}
}

func TestReadRejectsForeignValues(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://merpara.test", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "ws-1"})
	if _, ok := Read(req); ok {
		t.Fatalf("expected malformed session id to be ignored")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	secureReq := httptest.NewRequest(http.MethodGet, "https://merpara.test", nil)
	secureRR := httptest.NewRecorder()
	Write(secureRR, secureReq, "sess-1", requestmeta.SchemePolicy{})
	secureCookie, err := http.ParseSetCookie(secureRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if secureCookie.Name != Name {
		t.Fatalf("cookie name = %q, want %q", secureCookie.Name, Name)
	}
	if secureCookie.Value != "sess-1" {
		t.Fatalf("cookie value = %q, want %q", secureCookie.Value, "sess-1")
	}
	if !secureCookie.Secure || !secureCookie.HttpOnly {
		t.Fatalf("expected secure http-only cookie for https request")
	}
	if secureCookie.MaxAge != 0 || !secureCookie.Expires.IsZero() {
		t.Fatalf("expected browser-session cookie, got max-age=%d expires=%v", secureCookie.MaxAge, secureCookie.Expires)
	}
	if secureCookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v, want Lax", secureCookie.SameSite)
	}

	httpReq := httptest.NewRequest(http.MethodGet, "http://merpara.test", nil)
	httpRR := httptest.NewRecorder()
	Write(httpRR, httpReq, "sess-1", requestmeta.SchemePolicy{})
	httpCookie, err := http.ParseSetCookie(httpRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if httpCookie.Secure {
		t.Fatalf("expected non-secure cookie for http request")
	}

	policyReq := httptest.NewRequest(http.MethodGet, "http://merpara.test", nil)
	policyReq.Header.Set("X-Forwarded-Proto", "https")
	policyRR := httptest.NewRecorder()
	Write(policyRR, policyReq, "sess-1", requestmeta.SchemePolicy{TrustForwardedProto: true})
	policyCookie, err := http.ParseSetCookie(policyRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if !policyCookie.Secure {
		t.Fatalf("expected secure cookie when trusted policy is enabled")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://merpara.test", nil)
	rr := httptest.NewRecorder()
	Clear(rr, req, requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("MaxAge = %d, want negative", cookie.MaxAge)
	}
	Clear(nil, req, requestmeta.SchemePolicy{})
	Write(nil, req, "ignored", requestmeta.SchemePolicy{})
}
