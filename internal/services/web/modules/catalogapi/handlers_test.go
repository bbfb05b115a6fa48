package catalogapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/merpara/site/internal/services/web/catalog"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/routepath"
)

func newTestMux(packages PackageSource) *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(packages), modulehandler.NewTestBase(time.Now())))
	return mux
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), modulehandler.Base{}))
}

func TestListReturnsCatalogInOrder(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(catalog.Default()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.APIPackages, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var resp listResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var ids []string
	for _, pkg := range resp.Packages {
		ids = append(ids, pkg.ID)
	}
	if diff := cmp.Diff([]string{"pkg_discovery", "pkg_sampling", "pkg_launch"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	sampling := resp.Packages[1]
	if !sampling.Recommended || sampling.PriceDisplay != "$2499" || sampling.Href != "/api/packages/pkg_sampling" {
		t.Fatalf("sampling = %+v", sampling)
	}
}

func TestDetailReturnsOnePackage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(catalog.Default()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.APIPackage("pkg_launch"), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var resp packageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "pkg_launch" || resp.Price != 4999 {
		t.Fatalf("package = %+v", resp)
	}
}

func TestDetailUnknownPackageIsNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(catalog.Default()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.APIPackage("pkg_missing"), nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
}

func TestUnknownAPIPathIsJSONNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(catalog.Default()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestListWithoutCatalogIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.APIPackages, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestModuleMount(t *testing.T) {
	t.Parallel()

	m := New(catalog.Default(), modulehandler.Base{})
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.APIPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.APIPrefix)
	}
	if !m.Healthy() || New(nil, modulehandler.Base{}).Healthy() {
		t.Fatal("Healthy() should track catalog presence")
	}
}
