// Package db opens the application database.
package db

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "breed_backend/internal/feature/auth/domain/entity"
	historyentity "breed_backend/internal/feature/history/domain/entity"
)

const defaultPath = "data/breed_backend.db"

// OpenDB opens the SQLite database at DB_PATH (default data/breed_backend.db)
// and migrates the schema. TranslateError is enabled so driver-level unique
// constraint violations surface as gorm.ErrDuplicatedKey.
func OpenDB() *gorm.DB {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = defaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("failed to create database directory: %v", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to open database %s: %v", path, err)
	}

	if err := db.AutoMigrate(
		&authentity.User{},
		&historyentity.PredictionRecord{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
