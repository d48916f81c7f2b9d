package usecase

import (
	"context"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// CreateCollectionInput names a new showcase collection. Display order is
// assigned automatically (one past the owner's current maximum).
type CreateCollectionInput struct {
	Name        string
	Description string
}

// UpdateCollectionInput carries the editable collection fields. Nil pointers
// mean "leave unchanged".
type UpdateCollectionInput struct {
	Name        *string
	Description *string
}

// CollectionUsecase defines showcase collection operations. Mutations require
// the caller to own the collection.
type CollectionUsecase interface {
	// Create adds a new collection at the end of the caller's display order.
	Create(ctx context.Context, userID uuid.UUID, input CreateCollectionInput) (*entity.Collection, error)

	// Get fetches one collection with its items.
	Get(ctx context.Context, id uuid.UUID) (*entity.Collection, error)

	// ListByUser returns a user's collections in display order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error)

	// Update renames or re-describes a collection.
	Update(ctx context.Context, userID, collectionID uuid.UUID, input UpdateCollectionInput) (*entity.Collection, error)

	// Delete removes a collection and its items.
	Delete(ctx context.Context, userID, collectionID uuid.UUID) error

	// AddItem appends a diecast at the end of the collection.
	AddItem(ctx context.Context, userID, collectionID, diecastID uuid.UUID) (*entity.CollectionItem, error)

	// RemoveItem deletes one item from a collection.
	RemoveItem(ctx context.Context, userID, collectionID, itemID uuid.UUID) error
}
