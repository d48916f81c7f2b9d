package usecase

import (
	"context"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// UpdateProfileInput carries the editable profile fields. Nil pointers mean
// "leave unchanged" so partial updates stay partial.
type UpdateProfileInput struct {
	Nickname       *string
	Name           *string
	Bio            *string
	AvatarURL      *string
	Phone          *string
	SocialNetworks map[string]any
}

// UserUsecase defines public profile operations.
type UserUsecase interface {
	// GetProfile fetches a user's profile and bumps their visit counter when
	// viewed by someone else.
	GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies a partial update to the caller's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
}
