// Package usecase implements the business logic for the prediction history feature.
package usecase

import (
	"context"

	"breed_backend/internal/feature/history/domain/entity"
)

const (
	// DefaultLimit is the default number of history entries returned.
	DefaultLimit = 50
	// MaxLimit is the maximum number of history entries returned.
	MaxLimit = 500
)

// RecordRepository abstracts the persistence layer for prediction records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RecordRepository interface {
	// Create persists a new prediction record.
	Create(ctx context.Context, record *entity.PredictionRecord) error

	// ListByUser returns a user's records, newest first, up to limit.
	ListByUser(ctx context.Context, userID uint, limit int) ([]entity.PredictionRecord, error)
}

// historyUsecase provides recording and retrieval of past predictions.
type historyUsecase struct {
	records RecordRepository
}

// NewHistoryUsecase creates a new historyUsecase.
func NewHistoryUsecase(records RecordRepository) *historyUsecase {
	return &historyUsecase{records: records}
}

// RecordPrediction persists a successful classification outcome. It
// satisfies the prediction feature's Recorder interface.
func (u *historyUsecase) RecordPrediction(ctx context.Context, userID uint, breed string, probability float32, imageSHA256 string) error {
	return u.records.Create(ctx, &entity.PredictionRecord{
		UserID:      userID,
		Breed:       breed,
		Probability: probability,
		ImageSHA256: imageSHA256,
	})
}

// ListRecent returns the caller's most recent predictions, newest first.
func (u *historyUsecase) ListRecent(ctx context.Context, userID uint, limit int) ([]entity.PredictionRecord, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return u.records.ListByUser(ctx, userID, limit)
}
