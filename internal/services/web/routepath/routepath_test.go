package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if CartAdd != "/cart/add" {
		t.Fatalf("CartAdd = %q", CartAdd)
	}
	if CartRemove != "/cart/remove" {
		t.Fatalf("CartRemove = %q", CartRemove)
	}
	if APIPackages != "/api/packages" {
		t.Fatalf("APIPackages = %q", APIPackages)
	}
}

func TestPricing(t *testing.T) {
	t.Parallel()

	if got := Pricing(); got != "/#pricing" {
		t.Fatalf("Pricing() = %q, want %q", got, "/#pricing")
	}
}

func TestAPIPackageEscapesSegment(t *testing.T) {
	t.Parallel()

	if got := APIPackage(" pkg_launch "); got != "/api/packages/pkg_launch" {
		t.Fatalf("APIPackage() = %q", got)
	}
	if got := APIPackage("a/b"); got != "/api/packages/a%2Fb" {
		t.Fatalf("APIPackage() = %q", got)
	}
}
