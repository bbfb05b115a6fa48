// Package storage declares persistence contracts for web session carts.
//
// Carts are session-scoped scratch state. Every record carries an expiry and
// is discarded by the session sweeper once it lapses.
package storage
