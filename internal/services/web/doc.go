// Package web serves the Merpara marketing site and its per-session cart.
//
// The landing page, cart mutations, catalog API, and health probe are each a
// module mounted by app.Compose; this package wires their shared
// collaborators (catalog, cart store, session registry) and owns the HTTP
// server lifecycle.
package web
