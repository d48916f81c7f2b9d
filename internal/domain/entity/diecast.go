package entity

import (
	"time"

	"github.com/google/uuid"
)

// Diecast is a catalog item: one die-cast model casting with its descriptive
// attributes. Identity is immutable; attributes are maintained by catalog
// administrators.
type Diecast struct {
	ID                    uuid.UUID `json:"id"`
	ModelName             string    `json:"model_name"`
	ImageURL              string    `json:"image_url,omitempty"`
	CollectorNumber       string    `json:"collector_number,omitempty"`
	SeriesNumber          string    `json:"series_number,omitempty"`
	ReleaseYear           int       `json:"release_year,omitempty"`
	Series                string    `json:"series,omitempty"`
	Color                 string    `json:"color,omitempty"`
	Tampo                 string    `json:"tampo,omitempty"`
	WheelType             string    `json:"wheel_type,omitempty"`
	BaseType              string    `json:"base_type,omitempty"`
	BaseColor             string    `json:"base_color,omitempty"`
	WindowColor           string    `json:"window_color,omitempty"`
	InteriorColor         string    `json:"interior_color,omitempty"`
	ToyNumber             string    `json:"toy_number,omitempty"`
	AssortmentNumber      string    `json:"assortment_number,omitempty"`
	Scale                 string    `json:"scale,omitempty"`
	Country               string    `json:"country,omitempty"`
	BaseCodes             string    `json:"base_codes,omitempty"`
	CaseNumber            string    `json:"case_number,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	TreasureHuntYear      int       `json:"treasure_hunt_year,omitempty"`
	SuperTreasureHuntYear int       `json:"super_treasure_hunt_year,omitempty"`
	VisitCount            int       `json:"visit_count"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DiecastSummary is the lightweight projection used by search results and
// list views. It is derived per request and never persisted.
type DiecastSummary struct {
	ID          uuid.UUID `json:"id"`
	ModelName   string    `json:"model_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Series      string    `json:"series,omitempty"`
	Color       string    `json:"color,omitempty"`
	ReleaseYear int       `json:"release_year,omitempty"`
}
