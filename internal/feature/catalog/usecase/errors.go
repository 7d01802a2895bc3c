package usecase

import "errors"

var (
	// ErrBreedNotFound is returned when a breed name is not present in the catalog.
	ErrBreedNotFound = errors.New("breed not found in catalog")

	// ErrInvalidBreedType is returned when a type filter is neither cattle nor buffalo.
	ErrInvalidBreedType = errors.New("breed type must be cattle or buffalo")

	// ErrCatalogEmpty is returned when the catalog failed to load and no records are available.
	ErrCatalogEmpty = errors.New("breed catalog is empty")
)
