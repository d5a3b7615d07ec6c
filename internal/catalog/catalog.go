package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Package catalog provides the read-only restaurant lookup table consumed by
// the starred-restaurants handlers. The catalog is owned by an external party;
// this service never mutates it, so a Catalog is immutable after construction
// and safe for concurrent reads without locking.

// Restaurant is a single catalog entry.
type Restaurant struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Catalog is an ordered, read-only collection of restaurants.
type Catalog struct {
	restaurants []Restaurant
}

// New validates the given entries and builds a catalog from them.
func New(restaurants []Restaurant) (*Catalog, error) {
	seen := make(map[string]struct{}, len(restaurants))
	for i, r := range restaurants {
		if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d: id and name are required", i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %s", i, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	c := &Catalog{restaurants: make([]Restaurant, len(restaurants))}
	copy(c.restaurants, restaurants)
	return c, nil
}

// Default returns the built-in seed catalog used when no catalog file is
// configured. IDs are fixed so starred records keep resolving across restarts.
func Default() *Catalog {
	c, _ := New([]Restaurant{
		{ID: "d3a9c7a2-5b1e-4f3a-9c88-2f6c1a7e4b10", Name: "Pho Palace"},
		{ID: "1f7f38f6-9c0a-4d4e-8a3b-5e2d9b6c4a21", Name: "Salt & Ember"},
		{ID: "6b04f7a9-2d31-4c58-bb7d-8e19c3f0a652", Name: "Casa Limón"},
		{ID: "9c5e2d11-4a7f-4b09-a1c3-07d6e8b25f34", Name: "Blue Door Bagels"},
		{ID: "4e8a1b67-3c2d-4f90-9e5a-b1d07c6f2a83", Name: "Jade Garden"},
	})
	return c
}

// LoadFile reads a catalog from a YAML file of the form:
//
//	restaurants:
//	  - id: <uuid>
//	    name: <display name>
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Restaurants []Restaurant `yaml:"restaurants"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Restaurants) == 0 {
		return nil, fmt.Errorf("catalog %s: no restaurants", path)
	}
	return New(doc.Restaurants)
}

// FindByID returns the restaurant with the given id, if present.
func (c *Catalog) FindByID(id string) (Restaurant, bool) {
	for _, r := range c.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return Restaurant{}, false
}

// All returns the catalog entries in their original order.
func (c *Catalog) All() []Restaurant {
	out := make([]Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.restaurants) }
