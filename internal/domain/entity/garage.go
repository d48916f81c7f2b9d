package entity

import (
	"time"

	"github.com/google/uuid"
)

// Modality classifies why a collector holds a diecast in their garage.
type Modality string

const (
	// ModalityCollection marks an item kept in the personal collection.
	ModalityCollection Modality = "collection"
	// ModalitySale marks an item offered for sale or trade.
	ModalitySale Modality = "sale"
)

// IsValid checks if the Modality is a valid value.
func (m Modality) IsValid() bool {
	switch m {
	case ModalityCollection, ModalitySale:
		return true
	default:
		return false
	}
}

// GarageItem is one user's ownership record for one catalog diecast.
// The (UserID, DiecastID) pair is unique.
type GarageItem struct {
	UserID       uuid.UUID `json:"user_id"`
	DiecastID    uuid.UUID `json:"diecast_id"`
	Modality     Modality  `json:"modality"`
	Favorite     bool      `json:"favorite"`
	Price        float64   `json:"price"`
	Description  string    `json:"description,omitempty"`
	Sold         bool      `json:"sold"`
	Quantity     int       `json:"quantity"`
	IsNegotiable bool      `json:"is_negotiable"`
	VisitCount   int       `json:"visit_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GarageCard combines an ownership record with the catalog projection of the
// diecast it refers to, for collection display views.
type GarageCard struct {
	Diecast      DiecastSummary `json:"diecast"`
	Modality     Modality       `json:"modality"`
	Favorite     bool           `json:"favorite"`
	Price        float64        `json:"price"`
	Description  string         `json:"description,omitempty"`
	Sold         bool           `json:"sold"`
	Quantity     int            `json:"quantity"`
	IsNegotiable bool           `json:"is_negotiable"`
	VisitCount   int            `json:"visit_count"`
}
