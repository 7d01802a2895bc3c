// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"breed_backend/internal/feature/auth/domain/entity"
	"breed_backend/internal/feature/auth/usecase"
)

// userSQLite is the SQLite implementation of UserRepository, using GORM.
type userSQLite struct {
	db *gorm.DB
}

// userSQLite implements usecase.UserRepository (compile-time check).
var _ usecase.UserRepository = (*userSQLite)(nil)

// NewUserRepository creates a new userSQLite with the given DB handle.
func NewUserRepository(db *gorm.DB) *userSQLite {
	return &userSQLite{db: db}
}

// Create inserts a user. Returns usecase.ErrEmailAlreadyExists when the
// unique email index rejects the row. Requires the DB handle to be opened
// with TranslateError so the driver error maps to gorm.ErrDuplicatedKey.
func (r *userSQLite) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the user with the given email address.
// Returns usecase.ErrUserNotFound when no such user exists.
func (r *userSQLite) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with the given ID.
// Returns usecase.ErrUserNotFound when no such user exists.
func (r *userSQLite) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
