// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new collector account.
type RegisterInput struct {
	Email    string
	Nickname string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued token together with the public profile of
// the authenticated user. Registration and login share this shape.
type AuthOutput struct {
	Token string
	User  entity.PublicProfile
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account. Email conflicts win over nickname
	// conflicts when both would apply.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// CurrentUser resolves the authenticated user's full profile.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
