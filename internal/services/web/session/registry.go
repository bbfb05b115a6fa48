// Package session owns the per-browser carts behind the site's cart actions.
//
// A Registry hands each session id its own cart, serializes mutations for that
// id, and forgets carts that have been idle longer than the configured TTL.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	platformid "github.com/merpara/site/internal/platform/id"
	"github.com/merpara/site/internal/platform/timeouts"
	"github.com/merpara/site/internal/services/web/cart"
	webstorage "github.com/merpara/site/internal/services/web/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/merpara/site/internal/services/web/session"

// ErrSessionIDRequired reports an operation attempted without a session id.
var ErrSessionIDRequired = errors.New("session id is required")

// Option customizes a Registry.
type Option func(*Registry)

// WithTTL sets how long an untouched cart is kept. Non-positive values keep
// carts until they are deleted explicitly.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.ttl = ttl
	}
}

// WithClock replaces the wall clock used for expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(generate func() (string, error)) Option {
	return func(r *Registry) {
		if generate != nil {
			r.newID = generate
		}
	}
}

// Registry maps session ids to carts held in a CartStore.
type Registry struct {
	store  webstorage.CartStore
	ttl    time.Duration
	now    func() time.Time
	newID  func() (string, error)
	tracer trace.Tracer
	locks  keyedMutex
}

// NewRegistry builds a registry over store.
func NewRegistry(store webstorage.CartStore, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		ttl:    timeouts.SessionIdle,
		now:    time.Now,
		newID:  platformid.NewID,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// NewSessionID mints an opaque id for a browser that has no session yet.
func (r *Registry) NewSessionID() (string, error) {
	id, err := r.newID()
	if err != nil {
		return "", fmt.Errorf("new session id: %w", err)
	}
	return id, nil
}

// Load returns the cart for sessionID. Unknown and expired sessions read as an
// empty, closed cart; an expired record is deleted on the way.
func (r *Registry) Load(ctx context.Context, sessionID string) (cart.State, error) {
	ctx, span := r.tracer.Start(ctx, "session.Load")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return cart.State{}, nil
	}
	if r.store == nil {
		return cart.State{}, endWithError(span, fmt.Errorf("cart store is not configured"))
	}
	unlock := r.locks.lock(sessionID)
	defer unlock()

	state, _, err := r.load(ctx, sessionID)
	if err != nil {
		return cart.State{}, endWithError(span, err)
	}
	span.SetAttributes(attribute.Int("cart.entries", state.Len()))
	return state, nil
}

// Update applies fn to the session's cart and saves the result with a
// refreshed expiry. Calls for the same session id run one at a time.
//
// When fn fails nothing is saved; the returned state is the cart as fn left
// it, alongside fn's error. A cart left empty and closed is not stored, since
// it reads the same as no cart at all.
func (r *Registry) Update(ctx context.Context, sessionID string, fn func(*cart.Store) error) (cart.State, error) {
	ctx, span := r.tracer.Start(ctx, "session.Update")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return cart.State{}, endWithError(span, ErrSessionIDRequired)
	}
	if r.store == nil {
		return cart.State{}, endWithError(span, fmt.Errorf("cart store is not configured"))
	}
	if fn == nil {
		return cart.State{}, endWithError(span, fmt.Errorf("cart update is required"))
	}

	unlock := r.locks.lock(sessionID)
	defer unlock()

	current, stored, err := r.load(ctx, sessionID)
	if err != nil {
		return cart.State{}, endWithError(span, err)
	}
	store := cart.FromState(current)
	if err := fn(store); err != nil {
		span.RecordError(err)
		return store.State(), err
	}

	if next := store.State(); isBlank(next) {
		if stored {
			if err := r.store.DeleteCart(ctx, sessionID); err != nil {
				return cart.State{}, endWithError(span, fmt.Errorf("delete cart: %w", err))
			}
		}
		span.SetAttributes(attribute.Int("cart.entries", 0))
		return next, nil
	}

	now := r.now().UTC()
	record := webstorage.CartRecord{
		SessionID: sessionID,
		State:     store.State(),
		UpdatedAt: now,
	}
	if r.ttl > 0 {
		record.ExpiresAt = now.Add(r.ttl)
	}
	if err := r.store.PutCart(ctx, record); err != nil {
		return cart.State{}, endWithError(span, fmt.Errorf("save cart: %w", err))
	}
	span.SetAttributes(attribute.Int("cart.entries", record.State.Len()))
	return record.State, nil
}

// Sweep deletes carts that expired at or before the current time.
func (r *Registry) Sweep(ctx context.Context) (int, error) {
	ctx, span := r.tracer.Start(ctx, "session.Sweep")
	defer span.End()

	if r.store == nil {
		return 0, endWithError(span, fmt.Errorf("cart store is not configured"))
	}
	removed, err := r.store.DeleteExpired(ctx, r.now().UTC())
	if err != nil {
		return 0, endWithError(span, fmt.Errorf("sweep carts: %w", err))
	}
	span.SetAttributes(attribute.Int("cart.removed", removed))
	return removed, nil
}

// Run sweeps every interval until ctx ends.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = timeouts.SessionSweep
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := r.Sweep(ctx)
			if err != nil {
				log.Printf("session sweep failed err=%v", err)
				continue
			}
			if removed > 0 {
				log.Printf("session sweep removed=%d", removed)
			}
		}
	}
}

// load reads the live cart for sessionID and reports whether a record for it
// is stored. Callers hold the session lock.
func (r *Registry) load(ctx context.Context, sessionID string) (cart.State, bool, error) {
	record, ok, err := r.store.GetCart(ctx, sessionID)
	if err != nil {
		return cart.State{}, false, fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return cart.State{}, false, nil
	}
	if record.Expired(r.now()) {
		if err := r.store.DeleteCart(ctx, sessionID); err != nil {
			return cart.State{}, false, fmt.Errorf("delete expired cart: %w", err)
		}
		return cart.State{}, false, nil
	}
	return record.State, true, nil
}

func isBlank(state cart.State) bool {
	return len(state.Entries) == 0 && !state.IsOpen
}

func endWithError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// keyedMutex hands out one mutex per key and drops it once no caller holds or
// waits on it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	entry, ok := k.locks[key]
	if !ok {
		entry = &refMutex{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
