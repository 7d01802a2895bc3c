// Package usecase implements the business logic for the prediction feature.
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"

	"breed_backend/internal/feature/prediction/domain/entity"
)

const (
	// MaxImageSize is the maximum accepted image upload size (10MB).
	MaxImageSize = 10 * 1024 * 1024
	// TopK is the number of ranked candidates returned per prediction.
	TopK = 3
)

// Classifier runs one forward pass over an encoded image and returns the
// post-softmax probability vector, one entry per class label.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Classifier interface {
	Probabilities(ctx context.Context, imageData []byte) ([]float32, error)
}

// LabelProvider exposes the class label order the model was trained
// against: the ascending breed names of the catalog.
type LabelProvider interface {
	AllNames() []string
}

// Recorder persists a successful prediction for later review. A nil
// Recorder disables history; recording failures never fail the prediction.
type Recorder interface {
	RecordPrediction(ctx context.Context, userID uint, breed string, probability float32, imageSHA256 string) error
}

// predictionUsecase validates uploads, runs the classifier and ranks its output.
type predictionUsecase struct {
	classifier Classifier
	labels     LabelProvider
	recorder   Recorder
}

// NewPredictionUsecase creates a new predictionUsecase. classifier may be
// nil when the model artifact could not be loaded at startup; every
// Classify call then fails with ErrModelUnavailable.
func NewPredictionUsecase(classifier Classifier, labels LabelProvider, recorder Recorder) *predictionUsecase {
	return &predictionUsecase{classifier: classifier, labels: labels, recorder: recorder}
}

// Classify runs the full prediction pipeline and returns the top-K breed
// candidates, probability descending. userID 0 marks an anonymous caller.
func (u *predictionUsecase) Classify(ctx context.Context, userID uint, imageData []byte) ([]entity.BreedScore, error) {
	// Availability is checked before touching the image at all: an
	// unloaded model must fail without attempting to decode.
	if u.classifier == nil {
		return nil, ErrModelUnavailable
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: image data is empty", ErrInvalidImage)
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w: image size exceeds maximum of %d bytes", ErrInvalidImage, MaxImageSize)
	}

	labels := u.labels.AllNames()
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}

	probs, err := u.classifier.Probabilities(ctx, imageData)
	if err != nil {
		return nil, err
	}

	scores := rank(probs, labels, TopK)

	if u.recorder != nil && len(scores) > 0 {
		sum := sha256.Sum256(imageData)
		top := scores[0]
		if err := u.recorder.RecordPrediction(ctx, userID, top.Breed, top.Probability, hex.EncodeToString(sum[:])); err != nil {
			// Best effort: a history failure must not fail the prediction.
			slog.Warn("failed to record prediction", "error", err, "breed", top.Breed)
		}
	}

	return scores, nil
}

// rank pairs probabilities with their class labels and returns the k
// highest, probability descending. The stable sort keeps equal
// probabilities in class index order, which makes ties deterministic.
func rank(probs []float32, labels []string, k int) []entity.BreedScore {
	n := len(probs)
	if len(labels) < n {
		n = len(labels)
	}

	scores := make([]entity.BreedScore, 0, n)
	for i := 0; i < n; i++ {
		scores = append(scores, entity.BreedScore{Breed: labels[i], Probability: probs[i]})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Probability > scores[j].Probability
	})

	if len(scores) > k {
		scores = scores[:k]
	}
	return scores
}
