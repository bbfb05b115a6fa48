// Package catalog defines the purchasable service packages offered on the
// site. A Catalog is immutable once built and safe to share across requests.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPackageNotFound reports a lookup for an id the catalog does not offer.
var ErrPackageNotFound = errors.New("package not found")

// Package is one purchasable service tier.
type Package struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Subtitle    string   `json:"subtitle" yaml:"subtitle"`
	Price       int      `json:"price" yaml:"price"`
	Features    []string `json:"features" yaml:"features"`
	Recommended bool     `json:"recommended" yaml:"recommended"`
}

// Clone returns a copy that shares no memory with p.
func (p Package) Clone() Package {
	p.Features = append([]string(nil), p.Features...)
	return p
}

// Catalog is an ordered, read-only list of packages.
type Catalog struct {
	packages []Package
	byID     map[string]int
}

// New validates packages and builds a catalog that owns copies of them.
func New(packages []Package) (*Catalog, error) {
	if len(packages) == 0 {
		return nil, errors.New("catalog requires at least one package")
	}
	c := &Catalog{
		packages: make([]Package, 0, len(packages)),
		byID:     make(map[string]int, len(packages)),
	}
	for i, pkg := range packages {
		pkg.ID = strings.TrimSpace(pkg.ID)
		if pkg.ID == "" {
			return nil, fmt.Errorf("package %d: id is required", i)
		}
		if _, dup := c.byID[pkg.ID]; dup {
			return nil, fmt.Errorf("package %q: duplicate id", pkg.ID)
		}
		if strings.TrimSpace(pkg.Name) == "" {
			return nil, fmt.Errorf("package %q: name is required", pkg.ID)
		}
		if pkg.Price < 0 {
			return nil, fmt.Errorf("package %q: price must not be negative", pkg.ID)
		}
		c.byID[pkg.ID] = len(c.packages)
		c.packages = append(c.packages, pkg.Clone())
	}
	return c, nil
}

// List returns the packages in display order.
func (c *Catalog) List() []Package {
	if c == nil {
		return nil
	}
	out := make([]Package, len(c.packages))
	for i, pkg := range c.packages {
		out[i] = pkg.Clone()
	}
	return out
}

// Lookup returns the package with id.
func (c *Catalog) Lookup(id string) (Package, bool) {
	if c == nil {
		return Package{}, false
	}
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Package{}, false
	}
	return c.packages[idx].Clone(), true
}

// RecommendedCount returns how many packages carry the recommended flag.
// The page expects exactly one but does not enforce it.
func (c *Catalog) RecommendedCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, pkg := range c.packages {
		if pkg.Recommended {
			count++
		}
	}
	return count
}
