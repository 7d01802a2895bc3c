// Package handler provides the HTTP handlers for the prediction feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"breed_backend/internal/api"
	catalogentity "breed_backend/internal/feature/catalog/domain/entity"
	"breed_backend/internal/feature/prediction/domain/entity"
	"breed_backend/internal/feature/prediction/usecase"
	jwtmw "breed_backend/internal/platform/jwt"
)

// PredictionUsecase defines the classification operation used over HTTP.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PredictionUsecase interface {
	Classify(ctx context.Context, userID uint, imageData []byte) ([]entity.BreedScore, error)
}

// BreedLookup joins catalog metadata onto ranked results so the client can
// render a full result card from a single response.
type BreedLookup interface {
	Get(name string) (catalogentity.Breed, bool)
}

// PredictionHandler serves image classification requests.
type PredictionHandler struct {
	uc     PredictionUsecase
	breeds BreedLookup
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(uc PredictionUsecase, breeds BreedLookup) *PredictionHandler {
	return &PredictionHandler{uc: uc, breeds: breeds}
}

// Predict classifies an uploaded image and returns the top-3 breeds.
//
// Endpoint: POST /predict
// Content-Type: multipart/form-data
// Field: image (JPEG or PNG, max 10MB)
func (h *PredictionHandler) Predict(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("missing image upload", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "an image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open image upload", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close image upload", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read image upload", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	scores, err := h.uc.Classify(c.Request.Context(), c.GetUint(jwtmw.ContextUserID), imageData)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrModelUnavailable), errors.Is(err, usecase.ErrNoLabels):
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "prediction is currently unavailable"})
		default:
			slog.Error("classification failed", "error", err, "file", file.Filename)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "classification failed"})
		}
		return
	}

	out := make([]api.PredictionEntryResponse, 0, len(scores))
	for _, s := range scores {
		entry := api.PredictionEntryResponse{
			Breed:       s.Breed,
			Probability: s.Probability,
			Confidence:  s.ConfidenceTier(),
		}
		if b, ok := h.breeds.Get(s.Breed); ok {
			entry.Type = b.Type
			entry.Origin = b.Origin
			entry.Description = b.Description
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, api.PredictionResponse{Predictions: out})
}
