// Command classify runs the breed classifier over a directory of images and
// writes a JSON report. It is meant for offline batch runs at field stations.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"breed_backend/internal/feature/catalog/adapters/jsonfile"
	historyadapters "breed_backend/internal/feature/history/adapters"
	historyusecase "breed_backend/internal/feature/history/usecase"
	"breed_backend/internal/feature/prediction/adapters/onnx"
	"breed_backend/internal/feature/prediction/domain/entity"
	predictionusecase "breed_backend/internal/feature/prediction/usecase"
	infradb "breed_backend/internal/platform/db"
	"breed_backend/internal/shared/ratelimiter"
)

// fileResult is one line of the batch report.
type fileResult struct {
	File   string              `json:"file"`
	Scores []entity.BreedScore `json:"scores,omitempty"`
	Error  string              `json:"error,omitempty"`
}

var (
	inDir       = flag.String("input-dir", "images", "directory of images to classify")
	outPath     = flag.String("out", "classify_report.json", "report output path")
	breedsPath  = flag.String("breeds", "breeds.json", "breed catalog JSON path")
	modelPath   = flag.String("model", "models/breed_classifier_mobilenet.onnx", "model artifact path")
	metaPath    = flag.String("metadata", "models/breed_classifier_mobilenet.json", "model metadata path")
	limitPerMin = flag.Int("limit-per-min", 60, "max classifications per minute")
	record      = flag.Bool("record", false, "record results into the prediction history database")
)

func main() {
	flag.Parse()

	catalog, err := jsonfile.Load(*breedsPath)
	if err != nil {
		log.Fatalf("failed to load breed catalog: %v", err)
	}

	classifier, err := onnx.NewClassifier(*modelPath, *metaPath, len(catalog.AllNames()))
	if err != nil {
		log.Fatalf("failed to load model: %v", err)
	}
	defer classifier.Close()

	var recorder predictionusecase.Recorder
	if *record {
		db := infradb.OpenDB()
		recorder = historyusecase.NewHistoryUsecase(historyadapters.NewRecordRepository(db))
	}

	uc := predictionusecase.NewPredictionUsecase(classifier, catalog, recorder)
	limiter := ratelimiter.NewRateLimiter(*limitPerMin, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		log.Fatalf("failed to read input directory: %v", err)
	}

	var results []fileResult
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		limiter.WaitIfNeeded()

		path := filepath.Join(*inDir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			// Log and keep going; one bad file must not stop the batch
			slog.Error("failed to read image", "file", path, "error", err)
			results = append(results, fileResult{File: e.Name(), Error: err.Error()})
			continue
		}

		scores, err := uc.Classify(ctx, 0, data)
		if err != nil {
			slog.Error("failed to classify image", "file", path, "error", err)
			results = append(results, fileResult{File: e.Name(), Error: err.Error()})
			continue
		}
		results = append(results, fileResult{File: e.Name(), Scores: scores})
	}

	report, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}
	if err := os.WriteFile(*outPath, report, 0o644); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	log.Printf("classified %d files, report written to %s", len(results), *outPath)
}

// isImageFile reports whether the file name has a supported image extension.
func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
