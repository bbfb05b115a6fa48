package cart

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/merpara/site/internal/services/web/catalog"
)

func testPackages(t *testing.T) (discovery, sampling, launch catalog.Package) {
	t.Helper()
	c := catalog.Default()
	var ok bool
	if discovery, ok = c.Lookup("pkg_discovery"); !ok {
		t.Fatal("missing pkg_discovery")
	}
	if sampling, ok = c.Lookup("pkg_sampling"); !ok {
		t.Fatal("missing pkg_sampling")
	}
	if launch, ok = c.Lookup("pkg_launch"); !ok {
		t.Fatal("missing pkg_launch")
	}
	return discovery, sampling, launch
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.Package.ID
	}
	return ids
}

func TestEmptyCart(t *testing.T) {
	t.Parallel()

	s := New()
	if got := s.Total(); got != 0 {
		t.Fatalf("Total() = %d, want 0", got)
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	if s.IsOpen() {
		t.Fatal("new cart should start closed")
	}
}

func TestSelectionScenario(t *testing.T) {
	t.Parallel()

	discovery, sampling, _ := testPackages(t)
	s := New()

	s.Add(discovery)
	if got := s.Total(); got != 999 {
		t.Fatalf("Total() after discovery = %d, want 999", got)
	}
	if !s.IsOpen() {
		t.Fatal("IsOpen() = false after Add, want true")
	}

	s.Add(sampling)
	if got := s.Total(); got != 3498 {
		t.Fatalf("Total() after sampling = %d, want 3498", got)
	}
	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	if err := s.Remove(0); err != nil {
		t.Fatalf("Remove(0) error = %v", err)
	}
	if got := s.Len(); got != 1 {
		t.Fatalf("Len() after remove = %d, want 1", got)
	}
	if got := s.Entries()[0].Package.ID; got != "pkg_sampling" {
		t.Fatalf("remaining entry = %q, want %q", got, "pkg_sampling")
	}
	if got := s.Total(); got != 2499 {
		t.Fatalf("Total() after remove = %d, want 2499", got)
	}
}

func TestTotalIsOrderIndependentSum(t *testing.T) {
	t.Parallel()

	discovery, sampling, launch := testPackages(t)
	pool := []catalog.Package{discovery, sampling, launch}
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		s := New()
		want := 0
		n := rng.Intn(12)
		for i := 0; i < n; i++ {
			pkg := pool[rng.Intn(len(pool))]
			s.Add(pkg)
			want += pkg.Price
		}
		if got := s.Total(); got != want {
			t.Fatalf("round %d: Total() = %d, want %d", round, got, want)
		}
		if got := s.State().Total(); got != want {
			t.Fatalf("round %d: State().Total() = %d, want %d", round, got, want)
		}
	}
}

func TestRemovePreservesRelativeOrder(t *testing.T) {
	t.Parallel()

	discovery, sampling, launch := testPackages(t)
	for index := 0; index < 4; index++ {
		s := New()
		for _, pkg := range []catalog.Package{discovery, sampling, launch, discovery} {
			s.Add(pkg)
		}
		before := entryIDs(s.Entries())
		if err := s.Remove(index); err != nil {
			t.Fatalf("Remove(%d) error = %v", index, err)
		}
		want := append(append([]string(nil), before[:index]...), before[index+1:]...)
		if diff := cmp.Diff(want, entryIDs(s.Entries())); diff != "" {
			t.Fatalf("Remove(%d) order mismatch (-want +got):\n%s", index, diff)
		}
	}
}

func TestRemoveOutOfRangeLeavesEntriesUnchanged(t *testing.T) {
	t.Parallel()

	discovery, sampling, _ := testPackages(t)

	empty := New()
	if err := empty.Remove(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Remove(0) on empty cart error = %v, want %v", err, ErrIndexOutOfRange)
	}
	if empty.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", empty.Len())
	}

	s := New()
	s.Add(discovery)
	s.Add(sampling)
	before := s.State()
	for _, index := range []int{-1, 2, 99} {
		if err := s.Remove(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Remove(%d) error = %v, want %v", index, err, ErrIndexOutOfRange)
		}
		if diff := cmp.Diff(before, s.State()); diff != "" {
			t.Fatalf("Remove(%d) changed cart (-want +got):\n%s", index, diff)
		}
	}
}

func TestDuplicateEntriesAreIndependent(t *testing.T) {
	t.Parallel()

	_, sampling, _ := testPackages(t)
	s := New()
	s.Add(sampling)
	s.Add(sampling)
	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := s.Total(); got != 2*2499 {
		t.Fatalf("Total() = %d, want %d", got, 2*2499)
	}
	if err := s.Remove(1); err != nil {
		t.Fatalf("Remove(1) error = %v", err)
	}
	if got := s.Entries()[0].Package.ID; got != "pkg_sampling" {
		t.Fatalf("remaining entry = %q, want pkg_sampling", got)
	}
	if got := s.Total(); got != 2499 {
		t.Fatalf("Total() = %d, want 2499", got)
	}
}

func TestAddCopiesPackage(t *testing.T) {
	t.Parallel()

	discovery, _, _ := testPackages(t)
	s := New()
	s.Add(discovery)
	discovery.Price = 1
	discovery.Features[0] = "mutated"

	entry := s.Entries()[0]
	if entry.Package.Price != 999 {
		t.Fatalf("entry price = %d after caller mutation, want 999", entry.Package.Price)
	}
	if entry.Package.Features[0] != "Brand DNA Analysis" {
		t.Fatalf("entry feature = %q after caller mutation", entry.Package.Features[0])
	}
}

func TestAddAlwaysOpens(t *testing.T) {
	t.Parallel()

	discovery, _, _ := testPackages(t)
	s := New()
	s.Open()
	s.Add(discovery)
	if !s.IsOpen() {
		t.Fatal("IsOpen() = false after Add on open cart")
	}
	s.Close()
	s.Add(discovery)
	if !s.IsOpen() {
		t.Fatal("IsOpen() = false after Add on closed cart")
	}
}

func TestOpenCloseDoNotTouchEntries(t *testing.T) {
	t.Parallel()

	discovery, _, launch := testPackages(t)
	s := New()
	s.Add(discovery)
	s.Add(launch)
	before := entryIDs(s.Entries())

	s.Close()
	if s.IsOpen() {
		t.Fatal("IsOpen() = true after Close")
	}
	s.Open()
	if !s.IsOpen() {
		t.Fatal("IsOpen() = false after Open")
	}
	if diff := cmp.Diff(before, entryIDs(s.Entries())); diff != "" {
		t.Fatalf("entries changed by open/close (-want +got):\n%s", diff)
	}
}

func TestStateIsDetached(t *testing.T) {
	t.Parallel()

	discovery, _, _ := testPackages(t)
	s := New()
	s.Add(discovery)

	state := s.State()
	state.Entries[0].Package.Price = 0
	state.Entries = append(state.Entries, Entry{})
	if got := s.Total(); got != 999 {
		t.Fatalf("Total() = %d after snapshot mutation, want 999", got)
	}
	if got := s.Len(); got != 1 {
		t.Fatalf("Len() = %d after snapshot mutation, want 1", got)
	}
}

func TestFromStateRoundTrip(t *testing.T) {
	t.Parallel()

	discovery, sampling, _ := testPackages(t)
	s := New()
	s.Add(discovery)
	s.Add(sampling)
	s.Close()

	restored := FromState(s.State())
	if diff := cmp.Diff(s.State(), restored.State()); diff != "" {
		t.Fatalf("FromState mismatch (-want +got):\n%s", diff)
	}
	restored.Add(discovery)
	if s.Len() != 2 {
		t.Fatalf("original Len() = %d after mutating restored cart, want 2", s.Len())
	}
}
