// Package entity defines the domain model for the breed catalog feature.
package entity

// Animal types a breed can belong to. Comparisons against catalog data are
// case-insensitive; these constants are the canonical lowercase spellings.
const (
	TypeCattle  = "cattle"
	TypeBuffalo = "buffalo"
)

// Breed is one entry of the breed catalog. Records are loaded once at
// startup and never mutated afterwards.
type Breed struct {
	Name        string // unique key, e.g. "Gir" or "Murrah"
	Type        string // "cattle" or "buffalo"
	Origin      string
	Description string
}
