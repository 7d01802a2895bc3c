// Package handler provides the HTTP handlers for the prediction history feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"breed_backend/internal/api"
	"breed_backend/internal/feature/history/domain/entity"
	jwtmw "breed_backend/internal/platform/jwt"
)

// HistoryUsecase defines the history retrieval operation used over HTTP.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type HistoryUsecase interface {
	ListRecent(ctx context.Context, userID uint, limit int) ([]entity.PredictionRecord, error)
}

// HistoryHandler serves prediction history requests.
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List returns the authenticated worker's recent predictions, newest first.
//
// Endpoint: GET /history?limit=50
func (h *HistoryHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.uc.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		slog.Error("failed to list prediction history", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load history"})
		return
	}

	out := make([]api.HistoryEntryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, api.HistoryEntryResponse{
			Breed:       r.Breed,
			Probability: r.Probability,
			ImageSHA256: r.ImageSHA256,
			PredictedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}
