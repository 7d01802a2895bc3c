// Package gemini provides a breed advice client backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"breed_backend/internal/feature/catalog/usecase"
)

const (
	// DefaultModel is the Gemini model used for advice generation.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiAdvisor generates husbandry advice using the Google Gemini API.
type GeminiAdvisor struct {
	client *genai.Client
	model  string
}

// GeminiAdvisor implements usecase.BreedAdvisor (compile-time check).
var _ usecase.BreedAdvisor = (*GeminiAdvisor)(nil)

// NewGeminiAdvisor creates a GeminiAdvisor using application default
// credentials. Requires GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION to be set.
func NewGeminiAdvisor(ctx context.Context) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAdvisor{client: client, model: DefaultModel}, nil
}

// Advise generates an advice text from the given prompt.
func (g *GeminiAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
