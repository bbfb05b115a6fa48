// Package timeouts defines shared timeout constants used by the site.
// Centralizing these values keeps server and background loops in agreement.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionIdle is the default lifetime of an untouched cart session.
const SessionIdle = 2 * time.Hour

// SessionSweep is the default interval between expired-session sweeps.
const SessionSweep = 10 * time.Minute
