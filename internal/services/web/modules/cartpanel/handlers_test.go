package cartpanel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/merpara/site/internal/services/web/catalog"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/platform/sessioncookie"
	"github.com/merpara/site/internal/services/web/routepath"
	"github.com/merpara/site/internal/services/web/session"
	"github.com/merpara/site/internal/services/web/storage/memory"
)

type testServer struct {
	t      *testing.T
	mux    *http.ServeMux
	cookie *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mux := http.NewServeMux()
	registry := session.NewRegistry(memory.New())
	registerRoutes(mux, newHandlers(newService(catalog.Default(), registry), modulehandler.NewTestBase(time.Now())))
	return &testServer{t: t, mux: mux}
}

func (s *testServer) do(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	rr := httptest.NewRecorder()
	s.mux.ServeHTTP(rr, req)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			s.cookie = cookie
		}
	}
	return rr
}

func (s *testServer) snapshot() cartResponse {
	s.t.Helper()
	rr := s.do(http.MethodGet, routepath.Cart, nil, false)
	if rr.Code != http.StatusOK {
		s.t.Fatalf("GET /cart status = %d, want %d", rr.Code, http.StatusOK)
	}
	var resp cartResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		s.t.Fatalf("decode cart: %v", err)
	}
	return resp
}

func packageIDs(resp cartResponse) []string {
	ids := make([]string, len(resp.Entries))
	for i, entry := range resp.Entries {
		ids[i] = entry.PackageID
	}
	return ids
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil, nil), modulehandler.Base{}))
}

func TestSnapshotWithoutSessionIsEmpty(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp := srv.snapshot()
	want := cartResponse{Entries: []cartEntryResponse{}, Total: 0, TotalDisplay: "$0", IsOpen: false}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if srv.cookie != nil {
		t.Fatal("read-only request should not mint a session cookie")
	}
}

func TestAddMintsSessionAndRedirectsToPricing(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rr := srv.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_discovery"}}, false)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/#pricing" {
		t.Fatalf("Location = %q, want %q", got, "/#pricing")
	}
	if srv.cookie == nil {
		t.Fatal("expected session cookie on first mutation")
	}
	resp := srv.snapshot()
	if resp.Total != 999 || !resp.IsOpen {
		t.Fatalf("snapshot = %+v, want total 999 and open", resp)
	}
}

func TestSelectionScenarioOverHTTP(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_discovery"}}, false)

	rr := srv.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_sampling"}}, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("htmx add status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Trigger"); got != cartUpdatedEvent {
		t.Fatalf("HX-Trigger = %q, want %q", got, cartUpdatedEvent)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="cart-panel"`) || !strings.Contains(body, `<strong id="cart-total">$3,498</strong>`) {
		t.Fatalf("fragment missing panel or total: %q", body)
	}
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatalf("htmx response should be a fragment")
	}

	resp := srv.snapshot()
	if diff := cmp.Diff([]string{"pkg_discovery", "pkg_sampling"}, packageIDs(resp)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if resp.Total != 3498 || resp.TotalDisplay != "$3,498" {
		t.Fatalf("total = %d (%q), want 3498", resp.Total, resp.TotalDisplay)
	}

	srv.do(http.MethodPost, routepath.CartRemove, url.Values{"index": {"0"}}, false)
	resp = srv.snapshot()
	if diff := cmp.Diff([]string{"pkg_sampling"}, packageIDs(resp)); diff != "" {
		t.Fatalf("entries after remove mismatch (-want +got):\n%s", diff)
	}
	if resp.Total != 2499 {
		t.Fatalf("total = %d, want 2499", resp.Total)
	}
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_launch"}}, false)
	rr := srv.do(http.MethodPost, routepath.CartRemove, url.Values{"index": {"7"}}, false)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := packageIDs(srv.snapshot()); len(got) != 1 || got[0] != "pkg_launch" {
		t.Fatalf("entries = %v, want [pkg_launch]", got)
	}
}

func TestRemoveRejectsNonIntegerIndex(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rr := srv.do(http.MethodPost, routepath.CartRemove, url.Values{"index": {"first"}}, false)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestAddUnknownPackageIsNotFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rr := srv.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_missing"}}, false)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if srv.cookie != nil {
		t.Fatal("rejected add should not mint a session cookie")
	}
}

func TestAddEmptyPackageIDIsBadRequest(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	for _, form := range []url.Values{{}, {"package_id": {"  "}}} {
		rr := srv.do(http.MethodPost, routepath.CartAdd, form, false)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("Set-Cookie = %q, want none", got)
		}
	}
}

func TestCloseAndRemoveWithoutSessionStoreNothing(t *testing.T) {
	t.Parallel()

	store := memory.New()
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(catalog.Default(), session.NewRegistry(store)), modulehandler.NewTestBase(time.Now())))

	requests := []*http.Request{
		httptest.NewRequest(http.MethodPost, routepath.CartClose, nil),
		httptest.NewRequest(http.MethodPost, routepath.CartRemove, strings.NewReader("index=0")),
	}
	requests[1].Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, req := range requests {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("%s status = %d, want %d", req.URL.Path, rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("%s Set-Cookie = %q, want none", req.URL.Path, got)
		}
	}
	if removed, err := store.DeleteExpired(context.Background(), time.Now().Add(24*time.Hour)); err != nil || removed != 0 {
		t.Fatalf("stored carts = %d (err %v), want 0", removed, err)
	}
}

func TestOpenAndCloseToggleWithoutTouchingEntries(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_discovery"}}, false)

	rr := srv.do(http.MethodPost, routepath.CartClose, nil, false)
	if got := rr.Header().Get("Location"); got != routepath.Root {
		t.Fatalf("close Location = %q, want %q", got, routepath.Root)
	}
	resp := srv.snapshot()
	if resp.IsOpen || len(resp.Entries) != 1 {
		t.Fatalf("after close = %+v, want closed with one entry", resp)
	}

	rr = srv.do(http.MethodPost, routepath.CartOpen, nil, true)
	if !strings.Contains(rr.Body.String(), `role="dialog"`) {
		t.Fatalf("open fragment missing dialog: %q", rr.Body.String())
	}
	if !srv.snapshot().IsOpen {
		t.Fatal("cart should be open")
	}
}

func TestEmptyingAndClosingCartEndsSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_discovery"}}, false)
	srv.do(http.MethodPost, routepath.CartRemove, url.Values{"index": {"0"}}, false)
	if srv.cookie == nil || srv.cookie.MaxAge < 0 {
		t.Fatal("open empty cart should keep its session")
	}

	srv.do(http.MethodPost, routepath.CartClose, nil, false)
	if srv.cookie == nil || srv.cookie.MaxAge >= 0 {
		t.Fatalf("cookie = %+v, want expired session cookie", srv.cookie)
	}
}

func TestForeignSessionCookieIsCleared(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.cookie = &http.Cookie{Name: sessioncookie.Name, Value: "not-a-session"}
	rr := srv.do(http.MethodPost, routepath.CartClose, nil, false)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if srv.cookie.MaxAge >= 0 {
		t.Fatalf("cookie = %+v, want expired session cookie", srv.cookie)
	}
}

func TestClosedFragmentKeepsSwapTarget(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rr := srv.do(http.MethodPost, routepath.CartClose, nil, true)
	body := rr.Body.String()
	if !strings.Contains(body, `id="cart-panel"`) || !strings.Contains(body, "hidden") {
		t.Fatalf("closed fragment = %q, want hidden panel wrapper", body)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	first := newTestServer(t)
	first.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_discovery"}}, false)

	second := &testServer{t: t, mux: first.mux}
	second.do(http.MethodPost, routepath.CartAdd, url.Values{"package_id": {"pkg_launch"}}, false)

	if got := packageIDs(first.snapshot()); len(got) != 1 || got[0] != "pkg_discovery" {
		t.Fatalf("first session = %v", got)
	}
	if got := packageIDs(second.snapshot()); len(got) != 1 || got[0] != "pkg_launch" {
		t.Fatalf("second session = %v", got)
	}
}

func TestRoutesRejectUnexpectedMethods(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rr := srv.do(http.MethodGet, routepath.CartAdd, nil, false)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("GET add status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	rr = srv.do(http.MethodDelete, routepath.Cart, nil, false)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE cart status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestUnavailableSessionsReportServiceUnavailable(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(catalog.Default(), nil), modulehandler.NewTestBase(time.Now())))

	req := httptest.NewRequest(http.MethodPost, routepath.CartOpen, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
