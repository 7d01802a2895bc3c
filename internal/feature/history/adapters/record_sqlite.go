// Package adapters provides the repository implementations for the history feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"breed_backend/internal/feature/history/domain/entity"
	"breed_backend/internal/feature/history/usecase"
)

// recordSQLite is the SQLite implementation of RecordRepository, using GORM.
type recordSQLite struct {
	db *gorm.DB
}

// recordSQLite implements usecase.RecordRepository (compile-time check).
var _ usecase.RecordRepository = (*recordSQLite)(nil)

// NewRecordRepository creates a new recordSQLite with the given DB handle.
func NewRecordRepository(db *gorm.DB) *recordSQLite {
	return &recordSQLite{db: db}
}

// Create inserts a prediction record.
func (r *recordSQLite) Create(ctx context.Context, record *entity.PredictionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByUser returns a user's records, newest first, up to limit.
func (r *recordSQLite) ListByUser(ctx context.Context, userID uint, limit int) ([]entity.PredictionRecord, error) {
	var records []entity.PredictionRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
