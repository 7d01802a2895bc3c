package adapters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"breed_backend/internal/feature/history/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.PredictionRecord{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewRecordRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewRecordRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestRecordSQLite_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecordRepository(db)

	record := &entity.PredictionRecord{
		UserID:      1,
		Breed:       "Gir",
		Probability: 0.91,
		ImageSHA256: "0f343b0931126a20f133d67c2b018a3b",
	}

	err := repo.Create(context.Background(), record)

	assert.NoError(t, err, "failed to create record")
	assert.NotZero(t, record.ID, "ID is not set")
	assert.False(t, record.CreatedAt.IsZero(), "CreatedAt is not set")
}

func TestRecordSQLite_ListByUser(t *testing.T) {
	t.Run("returns only the user's records, newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewRecordRepository(db)

		// Insert with explicit timestamps so the ordering is deterministic.
		base := time.Now().Add(-time.Hour)
		seed := []entity.PredictionRecord{
			{UserID: 1, Breed: "Gir", Probability: 0.7, CreatedAt: base},
			{UserID: 1, Breed: "Sahiwal", Probability: 0.8, CreatedAt: base.Add(time.Minute)},
			{UserID: 2, Breed: "Murrah", Probability: 0.9, CreatedAt: base.Add(2 * time.Minute)},
			{UserID: 1, Breed: "Kankrej", Probability: 0.6, CreatedAt: base.Add(3 * time.Minute)},
		}
		for i := range seed {
			require.NoError(t, db.Create(&seed[i]).Error, "failed to seed record")
		}

		records, err := repo.ListByUser(context.Background(), 1, 10)

		require.NoError(t, err, "failed to list records")
		require.Len(t, records, 3, "unexpected record count")
		assert.Equal(t, "Kankrej", records[0].Breed, "newest record should come first")
		assert.Equal(t, "Sahiwal", records[1].Breed)
		assert.Equal(t, "Gir", records[2].Breed)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewRecordRepository(db)

		base := time.Now().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			record := entity.PredictionRecord{
				UserID:      1,
				Breed:       fmt.Sprintf("Breed %d", i),
				Probability: 0.5,
				CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			}
			require.NoError(t, db.Create(&record).Error, "failed to seed record")
		}

		records, err := repo.ListByUser(context.Background(), 1, 2)

		require.NoError(t, err, "failed to list records")
		assert.Len(t, records, 2, "limit should cap the result")
		assert.Equal(t, "Breed 4", records[0].Breed, "newest record should come first")
	})

	t.Run("no records returns an empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewRecordRepository(db)

		records, err := repo.ListByUser(context.Background(), 42, 10)

		assert.NoError(t, err, "empty result should not be an error")
		assert.Empty(t, records, "expected no records")
	})
}
