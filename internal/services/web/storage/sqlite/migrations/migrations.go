// Package migrations embeds the web cart schema.
package migrations

import "embed"

// FS holds the ordered SQL migrations for the cart store.
//
//go:embed *.sql
var FS embed.FS
