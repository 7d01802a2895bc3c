package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"breed_backend/internal/app/router"
	authadapters "breed_backend/internal/feature/auth/adapters"
	authhandler "breed_backend/internal/feature/auth/transport/handler"
	authusecase "breed_backend/internal/feature/auth/usecase"
	"breed_backend/internal/feature/catalog/adapters/gemini"
	"breed_backend/internal/feature/catalog/adapters/jsonfile"
	cataloghandler "breed_backend/internal/feature/catalog/transport/handler"
	catalogusecase "breed_backend/internal/feature/catalog/usecase"
	historyadapters "breed_backend/internal/feature/history/adapters"
	historyhandler "breed_backend/internal/feature/history/transport/handler"
	historyusecase "breed_backend/internal/feature/history/usecase"
	"breed_backend/internal/feature/prediction/adapters/onnx"
	predictionhandler "breed_backend/internal/feature/prediction/transport/handler"
	predictionusecase "breed_backend/internal/feature/prediction/usecase"
	"breed_backend/internal/platform/cache"
	infradb "breed_backend/internal/platform/db"
	jwtmw "breed_backend/internal/platform/jwt"
	infraredis "breed_backend/internal/platform/redis"
)

const (
	defaultBreedsPath   = "breeds.json"
	defaultModelPath    = "models/breed_classifier_mobilenet.onnx"
	defaultMetadataPath = "models/breed_classifier_mobilenet.json"

	tokenExpiration = 24 * time.Hour
	predictCacheTTL = time.Hour
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ctx := context.Background()

	// DB
	db := infradb.OpenDB()

	// Redis (optional; the prediction cache degrades to pass-through)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, running without prediction cache")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Breed catalog: a load failure degrades to an empty catalog so the
	// rest of the API keeps working.
	catalog, err := jsonfile.Load(getenv("BREEDS_JSON", defaultBreedsPath))
	if err != nil {
		slog.Warn("breed catalog unavailable, serving an empty catalog", "error", err)
		catalog = jsonfile.NewEmpty()
	}

	// Classifier: a load failure leaves prediction permanently disabled
	// for this process; every other endpoint keeps working.
	var classifier predictionusecase.Classifier
	onnxClassifier, err := onnx.NewClassifier(
		getenv("MODEL_PATH", defaultModelPath),
		getenv("MODEL_METADATA_PATH", defaultMetadataPath),
		len(catalog.AllNames()),
	)
	if err != nil {
		slog.Warn("model unavailable, prediction is disabled", "error", err)
	} else {
		defer onnxClassifier.Close()
		classifier = onnxClassifier
		if rdb != nil {
			classifier = cache.NewCachingClassifier(rdb, predictCacheTTL, onnxClassifier, "predict")
		}
	}

	// Gemini advisor (optional)
	var advisor catalogusecase.BreedAdvisor
	if a, err := gemini.NewGeminiAdvisor(ctx); err != nil {
		slog.Warn("gemini unavailable, breed advice is disabled", "error", err)
	} else {
		advisor = a
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	recordRepo := historyadapters.NewRecordRepository(db)

	// Usecases
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	catalogUC := catalogusecase.NewCatalogUsecase(catalog, advisor)
	historyUC := historyusecase.NewHistoryUsecase(recordRepo)
	predictionUC := predictionusecase.NewPredictionUsecase(classifier, catalog, historyUC)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	predictionH := predictionhandler.NewPredictionHandler(predictionUC, catalog)
	historyH := historyhandler.NewHistoryHandler(historyUC)

	r := router.NewRouter(authH, catalogH, predictionH, historyH)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
