// Package jsonfile loads the breed catalog from a static JSON file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"breed_backend/internal/feature/catalog/domain/entity"
	"breed_backend/internal/feature/catalog/usecase"
)

// breedRecord mirrors one value of the catalog file. The file is a flat JSON
// object keyed by breed name:
//
//	{"Gir": {"Type": "Cattle", "Origin": "Gujarat", "Description": "..."}}
type breedRecord struct {
	Type        string `json:"Type"`
	Origin      string `json:"Origin"`
	Description string `json:"Description"`
}

// Catalog is an immutable in-memory breed catalog. It is safe for
// concurrent readers because it is never mutated after Load.
type Catalog struct {
	breeds map[string]entity.Breed
	names  []string // ascending, derived once from the map keys
}

// Catalog implements usecase.BreedRepository (compile-time check).
var _ usecase.BreedRepository = (*Catalog)(nil)

// Load reads and parses the catalog file at path. A missing or malformed
// file is returned as an error; callers degrade to NewEmpty rather than
// aborting the process.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read breed catalog: %w", err)
	}

	var records map[string]breedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse breed catalog %s: %w", path, err)
	}

	breeds := make(map[string]entity.Breed, len(records))
	names := make([]string, 0, len(records))
	for name, rec := range records {
		breeds[name] = entity.Breed{
			Name:        name,
			Type:        strings.ToLower(rec.Type),
			Origin:      rec.Origin,
			Description: rec.Description,
		}
		names = append(names, name)
	}

	// The sorted key order is the class label order of the trained model;
	// position i of names must match output index i.
	sort.Strings(names)

	return &Catalog{breeds: breeds, names: names}, nil
}

// NewEmpty returns a catalog with no records, used when loading failed.
func NewEmpty() *Catalog {
	return &Catalog{breeds: map[string]entity.Breed{}}
}

// Get returns the record for a breed name, reporting whether it exists.
func (c *Catalog) Get(name string) (entity.Breed, bool) {
	b, ok := c.breeds[name]
	return b, ok
}

// AllNames returns every breed name in ascending lexicographic order.
func (c *Catalog) AllNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// FilterByType returns the names of all breeds of one animal type,
// compared case-insensitively, preserving the ascending name order.
func (c *Catalog) FilterByType(breedType string) []string {
	out := make([]string, 0, len(c.names))
	for _, name := range c.names {
		if strings.EqualFold(c.breeds[name].Type, breedType) {
			out = append(out, name)
		}
	}
	return out
}
