package usecase

import (
	"context"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// Search strategy labels reported in search responses and logs.
const (
	SearchStrategySimilarity = "similarity"
	SearchStrategySubstring  = "substring"
)

// SearchInput carries the raw search parameters before validation.
// PageSize and Threshold zero mean "use the configured default".
type SearchInput struct {
	Query     string
	Page      int
	PageSize  int
	Threshold float64
}

// PageMeta describes one page of a larger result set.
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// SearchOutput is one page of catalog search results. Strategy records which
// matching mechanism actually produced the page.
type SearchOutput struct {
	Results  []*entity.DiecastSummary `json:"results"`
	Meta     PageMeta                 `json:"meta"`
	Strategy string                   `json:"strategy"`
}

// CreateDiecastInput carries the attributes for a new catalog item. Only the
// model name is mandatory; everything else is reference data that may be
// filled in later.
type CreateDiecastInput struct {
	ModelName             string
	ImageURL              string
	CollectorNumber       string
	SeriesNumber          string
	ReleaseYear           int
	Series                string
	Color                 string
	Tampo                 string
	WheelType             string
	BaseType              string
	BaseColor             string
	WindowColor           string
	InteriorColor         string
	ToyNumber             string
	AssortmentNumber      string
	Scale                 string
	Country               string
	BaseCodes             string
	CaseNumber            string
	Notes                 string
	TreasureHuntYear      int
	SuperTreasureHuntYear int
}

// CatalogUsecase defines catalog browsing and search operations.
type CatalogUsecase interface {
	// Search finds catalog items whose model name approximately matches the
	// query, preferring trigram similarity and falling back to substring
	// matching when similarity is unavailable or matches nothing.
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// GetByID fetches one catalog item and bumps its popularity counter.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Diecast, error)

	// Create adds a new item to the catalog. Reserved for administrators.
	Create(ctx context.Context, input CreateDiecastInput) (*entity.Diecast, error)
}
