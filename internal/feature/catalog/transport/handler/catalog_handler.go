// Package handler provides the HTTP handlers for the breed catalog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"breed_backend/internal/api"
	"breed_backend/internal/feature/catalog/domain/entity"
	"breed_backend/internal/feature/catalog/usecase"
)

// CatalogUsecase defines the catalog operations used over HTTP.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	GetBreed(ctx context.Context, name string) (entity.Breed, error)
	ListByType(ctx context.Context, breedType string) ([]string, error)
	Groups(ctx context.Context) (cattle, buffalo []string)
	Advise(ctx context.Context, name string) (string, error)
}

// CatalogHandler serves breed catalog requests.
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List returns catalog breed names.
//
// Endpoint: GET /breeds            -> names grouped by animal type
// Endpoint: GET /breeds?type=cattle -> names of one type only
func (h *CatalogHandler) List(c *gin.Context) {
	if t := c.Query("type"); t != "" {
		names, err := h.uc.ListByType(c.Request.Context(), t)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, names)
		return
	}

	cattle, buffalo := h.uc.Groups(c.Request.Context())
	c.JSON(http.StatusOK, api.BreedGroupsResponse{Cattle: cattle, Buffalo: buffalo})
}

// Get returns the full catalog record for one breed.
//
// Endpoint: GET /breeds/:name
func (h *CatalogHandler) Get(c *gin.Context) {
	name := c.Param("name")
	b, err := h.uc.GetBreed(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "unknown breed"})
		return
	}
	c.JSON(http.StatusOK, api.BreedResponse{
		Name:        b.Name,
		Type:        b.Type,
		Origin:      b.Origin,
		Description: b.Description,
	})
}

// Advise generates husbandry advice for a catalog breed.
//
// Endpoint: POST /advice
// Content-Type: application/json
func (h *CatalogHandler) Advise(c *gin.Context) {
	var req api.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("advice request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "breed name is required"})
		return
	}

	advice, err := h.uc.Advise(c.Request.Context(), req.Breed)
	if err != nil {
		if errors.Is(err, usecase.ErrBreedNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "unknown breed"})
			return
		}
		slog.Error("advice generation failed", "error", err, "breed", req.Breed)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "advice generation failed"})
		return
	}

	c.JSON(http.StatusOK, api.AdviceResponse{Breed: req.Breed, Advice: advice})
}
