// Package cart implements the per-session selection of service packages.
//
// A Store is owned by exactly one session and is not safe for concurrent use;
// callers serialize access (see the session registry). Total is always
// derived from the entries and never cached.
package cart

import (
	"errors"

	"github.com/merpara/site/internal/services/web/catalog"
)

// ErrIndexOutOfRange reports a removal position outside the current entries.
// The cart is left unchanged when it is returned.
var ErrIndexOutOfRange = errors.New("cart index out of range")

// Entry is one occurrence of a package in the cart, copied at selection time.
type Entry struct {
	Package catalog.Package `json:"package"`
}

// State is a detached snapshot of a cart.
type State struct {
	Entries []Entry `json:"entries"`
	IsOpen  bool    `json:"is_open"`
}

// Total sums the entry prices.
func (s State) Total() int {
	total := 0
	for _, entry := range s.Entries {
		total += entry.Package.Price
	}
	return total
}

// Len returns the number of entries.
func (s State) Len() int {
	return len(s.Entries)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{IsOpen: s.IsOpen}
	if len(s.Entries) > 0 {
		out.Entries = make([]Entry, len(s.Entries))
		for i, entry := range s.Entries {
			out.Entries[i] = Entry{Package: entry.Package.Clone()}
		}
	}
	return out
}

// Store is the mutable cart for one session.
type Store struct {
	entries []Entry
	open    bool
}

// New returns an empty, closed cart.
func New() *Store {
	return &Store{}
}

// FromState rebuilds a cart from a snapshot.
func FromState(state State) *Store {
	state = state.Clone()
	return &Store{entries: state.Entries, open: state.IsOpen}
}

// Add appends a copy of pkg and opens the summary panel. Adding a package
// that is already present creates a second, independent entry.
func (s *Store) Add(pkg catalog.Package) {
	s.entries = append(s.entries, Entry{Package: pkg.Clone()})
	s.open = true
}

// Remove deletes the entry at index, shifting later entries left.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return ErrIndexOutOfRange
	}
	next := make([]Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:index]...)
	next = append(next, s.entries[index+1:]...)
	s.entries = next
	return nil
}

// Total sums the prices of all entries; 0 for an empty cart.
func (s *Store) Total() int {
	return s.State().Total()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Store) Entries() []Entry {
	return s.State().Entries
}

// Open shows the summary panel.
func (s *Store) Open() { s.open = true }

// Close hides the summary panel.
func (s *Store) Close() { s.open = false }

// IsOpen reports whether the summary panel is shown.
func (s *Store) IsOpen() bool { return s.open }

// State returns a detached snapshot.
func (s *Store) State() State {
	return State{Entries: s.entries, IsOpen: s.open}.Clone()
}
