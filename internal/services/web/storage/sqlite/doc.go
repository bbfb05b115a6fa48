// Package sqlite provides the session cart store backed by SQLite.
//
// Carts survive process restarts until their session expiry; they are never
// a source of truth for anything beyond the browsing session.
package sqlite
