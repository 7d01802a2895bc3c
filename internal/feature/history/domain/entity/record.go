// Package entity defines the domain entities for the prediction history feature.
package entity

import "time"

// PredictionRecord is one persisted classification outcome. Only the top-1
// candidate is stored; the image itself is kept as a SHA-256 digest so runs
// can be correlated without storing uploads.
type PredictionRecord struct {
	// ID is the unique identifier of the record.
	ID uint `gorm:"primaryKey"`

	// UserID is the field worker who ran the prediction. 0 marks an
	// anonymous run (e.g. the batch CLI).
	UserID uint `gorm:"index"`

	// Breed is the top-ranked breed name.
	Breed string `gorm:"size:255;not null"`

	// Probability is the top-ranked probability in [0, 1].
	Probability float32 `gorm:"not null"`

	// ImageSHA256 is the hex digest of the classified image bytes.
	ImageSHA256 string `gorm:"size:64;index"`

	// CreatedAt is the timestamp the prediction was recorded.
	CreatedAt time.Time
}
