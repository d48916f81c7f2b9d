package usecase

import (
	"context"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// AddGarageItemInput registers ownership of a catalog diecast.
type AddGarageItemInput struct {
	DiecastID    uuid.UUID
	Modality     entity.Modality
	Favorite     bool
	Price        float64
	Description  string
	Quantity     int
	IsNegotiable bool
}

// UpdateGarageItemInput carries the editable ownership fields. Nil pointers
// mean "leave unchanged".
type UpdateGarageItemInput struct {
	Modality     *entity.Modality
	Favorite     *bool
	Price        *float64
	Description  *string
	Sold         *bool
	Quantity     *int
	IsNegotiable *bool
}

// GarageListOutput is one page of a user's garage.
type GarageListOutput struct {
	Items []*entity.GarageItem `json:"items"`
	Meta  PageMeta             `json:"meta"`
}

// GarageCardsOutput is one page of a user's garage joined with catalog data.
type GarageCardsOutput struct {
	Cards []*entity.GarageCard `json:"cards"`
	Meta  PageMeta             `json:"meta"`
}

// GarageUsecase defines ownership-record operations. All mutations operate on
// the authenticated caller's own garage.
type GarageUsecase interface {
	// Add registers a diecast in the caller's garage.
	Add(ctx context.Context, userID uuid.UUID, input AddGarageItemInput) (*entity.GarageItem, error)

	// Get fetches one of the caller's ownership records.
	Get(ctx context.Context, userID, diecastID uuid.UUID) (*entity.GarageItem, error)

	// Update applies a partial update to an ownership record.
	Update(ctx context.Context, userID, diecastID uuid.UUID, input UpdateGarageItemInput) (*entity.GarageItem, error)

	// Remove deletes an ownership record.
	Remove(ctx context.Context, userID, diecastID uuid.UUID) error

	// List returns a page of a user's ownership records.
	List(ctx context.Context, userID uuid.UUID, page, pageSize int) (*GarageListOutput, error)

	// ListCards returns a page of a user's garage joined with catalog
	// projections, for display views.
	ListCards(ctx context.Context, userID uuid.UUID, page, pageSize int) (*GarageCardsOutput, error)
}
