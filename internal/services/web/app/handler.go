// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"io/fs"
	"net/http"

	module "github.com/merpara/site/internal/services/web/module"
	"github.com/merpara/site/internal/services/web/platform/httpx"
	"github.com/merpara/site/internal/services/web/platform/requestmeta"
	"go.opentelemetry.io/otel/trace"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules             []module.Module
	StaticFS            fs.FS
	RequestSchemePolicy requestmeta.SchemePolicy
	Tracer              trace.Tracer
}

// BuildRootHandler composes modules and wraps the result with the shared
// request middleware. Panic recovery runs innermost so traced spans see the
// resulting 500.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	root, err := Compose(ComposeInput{
		Modules:             cfg.Modules,
		StaticFS:            cfg.StaticFS,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}
	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.Trace(cfg.Tracer),
		httpx.RecoverPanic(),
	), nil
}
