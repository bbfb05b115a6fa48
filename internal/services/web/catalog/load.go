package catalog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Packages []Package `yaml:"packages"`
}

// LoadFile reads a YAML catalog document from path.
//
//	packages:
//	  - id: pkg_discovery
//	    name: The Visionary
//	    price: 999
//	    features: [Brand DNA Analysis]
func LoadFile(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML catalog document. Unknown fields are rejected so typos
// in hand-edited files surface at startup.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decode catalog: empty document")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c, err := New(doc.Packages)
	if err != nil {
		return nil, err
	}
	if n := c.RecommendedCount(); n != 1 {
		log.Printf("catalog has %d recommended packages, expected 1", n)
	}
	return c, nil
}

// Resolve returns the catalog at path, or the default catalog when path is
// empty.
func Resolve(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
