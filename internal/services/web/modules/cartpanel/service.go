package cartpanel

import (
	"context"
	"errors"
	"strings"

	"github.com/merpara/site/internal/services/web/cart"
	"github.com/merpara/site/internal/services/web/catalog"
	apperrors "github.com/merpara/site/internal/services/web/platform/errors"
)

// PackageLookup resolves a package id to the catalog entry it names.
type PackageLookup interface {
	Lookup(id string) (catalog.Package, bool)
}

// CartSessions loads and mutates carts keyed by session id.
type CartSessions interface {
	NewSessionID() (string, error)
	Load(ctx context.Context, sessionID string) (cart.State, error)
	Update(ctx context.Context, sessionID string, fn func(*cart.Store) error) (cart.State, error)
}

type unavailablePackages struct{}

func (unavailablePackages) Lookup(string) (catalog.Package, bool) { return catalog.Package{}, false }

type unavailableSessions struct{}

func (unavailableSessions) NewSessionID() (string, error) {
	return "", errUnavailable
}

func (unavailableSessions) Load(context.Context, string) (cart.State, error) {
	return cart.State{}, errUnavailable
}

func (unavailableSessions) Update(context.Context, string, func(*cart.Store) error) (cart.State, error) {
	return cart.State{}, errUnavailable
}

var errUnavailable = apperrors.E(apperrors.KindUnavailable, "cart sessions are not configured")

type service struct {
	packages PackageLookup
	carts    CartSessions
}

func newService(packages PackageLookup, carts CartSessions) service {
	if packages == nil {
		packages = unavailablePackages{}
	}
	if carts == nil {
		carts = unavailableSessions{}
	}
	return service{packages: packages, carts: carts}
}

func (s service) newSessionID() (string, error) {
	id, err := s.carts.NewSessionID()
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindUnavailable, "could not start a cart session", err)
	}
	return id, nil
}

func (s service) snapshot(ctx context.Context, sessionID string) (cart.State, error) {
	return s.carts.Load(ctx, sessionID)
}

// resolvePackage validates a selection before any session is touched.
func (s service) resolvePackage(packageID string) (catalog.Package, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return catalog.Package{}, apperrors.E(apperrors.KindInvalidInput, "package id is required")
	}
	pkg, ok := s.packages.Lookup(packageID)
	if !ok {
		return catalog.Package{}, apperrors.Wrap(apperrors.KindNotFound, "package "+packageID+" is not offered", catalog.ErrPackageNotFound)
	}
	return pkg, nil
}

// add appends pkg and opens the panel.
func (s service) add(ctx context.Context, sessionID string, pkg catalog.Package) (cart.State, error) {
	return s.carts.Update(ctx, sessionID, func(store *cart.Store) error {
		store.Add(pkg)
		return nil
	})
}

// remove drops the entry at index. An index outside the cart leaves it
// unchanged and still succeeds.
func (s service) remove(ctx context.Context, sessionID string, index int) (cart.State, error) {
	return s.carts.Update(ctx, sessionID, func(store *cart.Store) error {
		if err := store.Remove(index); err != nil && !errors.Is(err, cart.ErrIndexOutOfRange) {
			return err
		}
		return nil
	})
}

func (s service) setOpen(ctx context.Context, sessionID string, open bool) (cart.State, error) {
	return s.carts.Update(ctx, sessionID, func(store *cart.Store) error {
		if open {
			store.Open()
		} else {
			store.Close()
		}
		return nil
	})
}
