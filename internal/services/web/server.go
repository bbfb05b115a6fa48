package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/merpara/site/internal/platform/timeouts"
	"github.com/merpara/site/internal/services/web/app"
	"github.com/merpara/site/internal/services/web/catalog"
	"github.com/merpara/site/internal/services/web/content"
	"github.com/merpara/site/internal/services/web/modules"
	"github.com/merpara/site/internal/services/web/platform/requestmeta"
	"github.com/merpara/site/internal/services/web/session"
	"github.com/merpara/site/internal/services/web/static"
	webstorage "github.com/merpara/site/internal/services/web/storage"
	"github.com/merpara/site/internal/services/web/storage/memory"
	"github.com/merpara/site/internal/services/web/storage/sqlite"
	"go.opentelemetry.io/otel"
)

const tracerName = "github.com/merpara/site/internal/services/web"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// CatalogPath points at a YAML package list; empty uses the built-in tiers.
	CatalogPath string
	// SessionDBPath selects SQLite cart storage; empty keeps carts in memory.
	SessionDBPath       string
	SessionTTL          time.Duration
	SweepInterval       time.Duration
	TrustForwardedProto bool
	// Now overrides the clock used for cart expiry and the footer year.
	Now func() time.Time
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr      string
	httpServer    *http.Server
	store         webstorage.CartStore
	sessions      *session.Registry
	sweepInterval time.Duration
}

// NewServer builds a configured web server.
//
// NewServer is the process entrypoint adapter: it loads the catalog, opens
// cart storage, and composes the module handler.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.SessionTTL < 0 {
		return nil, errors.New("session ttl must not be negative")
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	packages, err := catalog.Resolve(config.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	store, err := openCartStore(ctx, config.SessionDBPath)
	if err != nil {
		return nil, err
	}
	sessions := session.NewRegistry(store,
		session.WithTTL(config.SessionTTL),
		session.WithClock(config.Now),
	)
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}

	handler, err := app.BuildRootHandler(app.Config{
		Modules: modules.DefaultModules(modules.Dependencies{
			Catalog:             packages,
			Site:                content.Default(),
			Sessions:            sessions,
			RequestSchemePolicy: policy,
			Now:                 config.Now,
		}),
		StaticFS:            static.FS,
		RequestSchemePolicy: policy,
		Tracer:              otel.Tracer(tracerName),
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:         store,
		sessions:      sessions,
		sweepInterval: config.SweepInterval,
	}, nil
}

func openCartStore(ctx context.Context, path string) (webstorage.CartStore, error) {
	if strings.TrimSpace(path) == "" {
		return memory.New(), nil
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open cart store: %w", err)
	}
	return store, nil
}

// Handler returns the composed root handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server and the cart sweeper until the context
// ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	// The sweeper must be gone before Close releases the store.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	var sweeper sync.WaitGroup
	defer func() {
		stopSweep()
		sweeper.Wait()
	}()
	if s.sweepInterval > 0 {
		sweeper.Add(1)
		go func() {
			defer sweeper.Done()
			s.sessions.Run(sweepCtx, s.sweepInterval)
		}()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the cart store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close cart store: %v", err)
	}
}
