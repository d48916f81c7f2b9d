package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// ErrGarageItemNotFound is returned when an ownership record is not found.
var ErrGarageItemNotFound = errors.New("garage item not found")

// GarageRepository persists per-user ownership records.
type GarageRepository interface {
	// Find retrieves one ownership record by its composite key.
	Find(ctx context.Context, userID, diecastID uuid.UUID) (*entity.GarageItem, error)

	// Create persists a new ownership record.
	Create(ctx context.Context, item *entity.GarageItem) error

	// Update modifies an existing ownership record.
	Update(ctx context.Context, item *entity.GarageItem) error

	// Delete removes an ownership record; ErrGarageItemNotFound if absent.
	Delete(ctx context.Context, userID, diecastID uuid.UUID) error

	// ListByUser returns a page of the user's ownership records.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GarageItem, error)

	// CountByUser counts the user's ownership records.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListCardsByUser returns a page of ownership records joined with their
	// catalog projections.
	ListCardsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GarageCard, error)
}
