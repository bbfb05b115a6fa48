package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/merpara/site/internal/platform/storage/sqlitemigrate"
	"github.com/merpara/site/internal/services/web/cart"
	webstorage "github.com/merpara/site/internal/services/web/storage"
	"github.com/merpara/site/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for session carts.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a cart SQLite store at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCart loads the cart for sessionID.
func (s *Store) GetCart(ctx context.Context, sessionID string) (webstorage.CartRecord, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.CartRecord{}, false, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return webstorage.CartRecord{}, false, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT session_id, state_json, updated_at, expires_at
		 FROM session_carts
		 WHERE session_id = ?`,
		sessionID,
	)
	var record webstorage.CartRecord
	var payload []byte
	var updatedAt int64
	var expiresAt int64
	if err := row.Scan(&record.SessionID, &payload, &updatedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.CartRecord{}, false, nil
		}
		return webstorage.CartRecord{}, false, fmt.Errorf("get cart: %w", err)
	}
	var state cart.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return webstorage.CartRecord{}, false, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}
	record.State = state
	record.UpdatedAt = unixMillisToTime(updatedAt)
	record.ExpiresAt = unixMillisToTime(expiresAt)
	return record, true, nil
}

// PutCart upserts a cart record.
func (s *Store) PutCart(ctx context.Context, record webstorage.CartRecord) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.SessionID = strings.TrimSpace(record.SessionID)
	if record.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(record.State)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO session_carts (session_id, state_json, entry_count, updated_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		    state_json = excluded.state_json,
		    entry_count = excluded.entry_count,
		    updated_at = excluded.updated_at,
		    expires_at = excluded.expires_at`,
		record.SessionID,
		payload,
		record.State.Len(),
		timeToUnixMillis(record.UpdatedAt),
		timeToUnixMillis(record.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cart: %w", err)
	}
	return nil
}

// DeleteCart removes the cart for sessionID.
func (s *Store) DeleteCart(ctx context.Context, sessionID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM session_carts WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// DeleteExpired removes carts whose expiry is at or before now. Records with
// no expiry are kept.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM session_carts WHERE expires_at > 0 AND expires_at <= ?`,
		timeToUnixMillis(now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired carts: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count expired carts: %w", err)
	}
	return int(affected), nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
