// Package usecase implements the business logic for the breed catalog feature.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"breed_backend/internal/feature/catalog/domain/entity"
)

// AdvicePromptTemplate is the prompt used to generate husbandry advice.
// Placeholders: breed name, animal type, region of origin.
const AdvicePromptTemplate = "In plain English for a field-level worker, list three practical care tips for the %s breed, a %s breed from %s."

// BreedRepository abstracts read access to the loaded breed catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type BreedRepository interface {
	// Get returns the record for a breed name, reporting whether it exists.
	Get(name string) (entity.Breed, bool)

	// AllNames returns every breed name in ascending lexicographic order.
	// This ordering doubles as the class label order of the trained model.
	AllNames() []string

	// FilterByType returns the names of all breeds of the given animal type,
	// compared case-insensitively, in ascending order.
	FilterByType(breedType string) []string
}

// BreedAdvisor generates free-text husbandry advice from a prompt.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type BreedAdvisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// catalogUsecase provides catalog lookups and advice generation.
type catalogUsecase struct {
	breeds  BreedRepository
	advisor BreedAdvisor
}

// NewCatalogUsecase creates a new catalogUsecase. The advisor may be nil
// when no generative backend is configured; Advise then fails cleanly.
func NewCatalogUsecase(breeds BreedRepository, advisor BreedAdvisor) *catalogUsecase {
	return &catalogUsecase{breeds: breeds, advisor: advisor}
}

// GetBreed returns the catalog record for a breed name.
func (u *catalogUsecase) GetBreed(ctx context.Context, name string) (entity.Breed, error) {
	b, ok := u.breeds.Get(name)
	if !ok {
		return entity.Breed{}, ErrBreedNotFound
	}
	return b, nil
}

// ListNames returns all breed names in ascending order.
func (u *catalogUsecase) ListNames(ctx context.Context) []string {
	return u.breeds.AllNames()
}

// ListByType returns the breed names of one animal type.
func (u *catalogUsecase) ListByType(ctx context.Context, breedType string) ([]string, error) {
	t := strings.ToLower(breedType)
	if t != entity.TypeCattle && t != entity.TypeBuffalo {
		return nil, ErrInvalidBreedType
	}
	return u.breeds.FilterByType(t), nil
}

// Groups returns the catalog names split into cattle and buffalo breeds.
func (u *catalogUsecase) Groups(ctx context.Context) (cattle, buffalo []string) {
	return u.breeds.FilterByType(entity.TypeCattle), u.breeds.FilterByType(entity.TypeBuffalo)
}

// Advise generates husbandry advice for a breed. The name must exist in the
// catalog; membership is the only validation the prompt input needs.
func (u *catalogUsecase) Advise(ctx context.Context, name string) (string, error) {
	b, ok := u.breeds.Get(name)
	if !ok {
		return "", ErrBreedNotFound
	}
	if u.advisor == nil {
		return "", fmt.Errorf("advice generation is not configured")
	}
	prompt := fmt.Sprintf(AdvicePromptTemplate, b.Name, b.Type, b.Origin)
	advice, err := u.advisor.Advise(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("breed advisor failed for %q: %w", name, err)
	}
	return advice, nil
}
