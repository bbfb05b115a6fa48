// Package memory provides the in-process cart store used when no database is
// configured.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	webstorage "github.com/merpara/site/internal/services/web/storage"
)

// Store keeps cart records in a map.
type Store struct {
	mu      sync.Mutex
	records map[string]webstorage.CartRecord
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string]webstorage.CartRecord)}
}

// Close drops every record.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]webstorage.CartRecord)
	return nil
}

// GetCart loads the cart for sessionID.
func (s *Store) GetCart(_ context.Context, sessionID string) (webstorage.CartRecord, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return webstorage.CartRecord{}, false, fmt.Errorf("session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[sessionID]
	if !ok {
		return webstorage.CartRecord{}, false, nil
	}
	record.State = record.State.Clone()
	return record, true, nil
}

// PutCart upserts a cart record.
func (s *Store) PutCart(_ context.Context, record webstorage.CartRecord) error {
	record.SessionID = strings.TrimSpace(record.SessionID)
	if record.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}
	record.State = record.State.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.SessionID] = record
	return nil
}

// DeleteCart removes the cart for sessionID. Missing carts are not an error.
func (s *Store) DeleteCart(_ context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

// DeleteExpired removes records that lapsed at or before now.
func (s *Store) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, record := range s.records {
		if record.Expired(now) {
			delete(s.records, id)
			removed++
		}
	}
	return removed, nil
}
