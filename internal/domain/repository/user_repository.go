// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByNickname retrieves a single user by their public handle.
	FindByNickname(ctx context.Context, nickname string) (*entity.User, error)

	// FindCredentialByEmail returns the user together with their stored
	// password digest, for login verification only.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.User, string, error)

	// Create persists a new user with the given password digest and fills in
	// generated fields. A unique-constraint race surfaces as the same
	// conflict error the pre-checks produce.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// IncrementVisitCount bumps the profile view counter.
	IncrementVisitCount(ctx context.Context, id uuid.UUID) error
}
