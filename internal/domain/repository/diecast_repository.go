package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// ErrDiecastNotFound is returned when a catalog item is not found.
var ErrDiecastNotFound = errors.New("diecast not found")

// ErrSimilarityUnavailable signals that the trigram similarity mechanism
// cannot be used (e.g. the pg_trgm extension is missing). The search service
// absorbs it by falling back to substring matching; it never reaches callers.
var ErrSimilarityUnavailable = errors.New("similarity search unavailable")

// DiecastRepository defines catalog persistence and the two search strategies.
type DiecastRepository interface {
	// FindByID retrieves a single catalog item.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Diecast, error)

	// Create persists a new catalog item.
	Create(ctx context.Context, diecast *entity.Diecast) error

	// SearchBySimilarity ranks catalog items by trigram similarity of their
	// model name against query, keeping only scores strictly greater than
	// threshold, ordered by score descending. May fail with
	// ErrSimilarityUnavailable.
	SearchBySimilarity(ctx context.Context, query string, threshold float64, limit, offset int) ([]*entity.DiecastSummary, error)

	// CountBySimilarity counts items passing the similarity threshold.
	CountBySimilarity(ctx context.Context, query string, threshold float64) (int64, error)

	// SearchBySubstring performs case-insensitive containment matching on the
	// model name, in natural order.
	SearchBySubstring(ctx context.Context, query string, limit, offset int) ([]*entity.DiecastSummary, error)

	// CountBySubstring counts items matching the containment predicate.
	CountBySubstring(ctx context.Context, query string) (int64, error)

	// IncrementVisitCount bumps the item popularity counter.
	IncrementVisitCount(ctx context.Context, id uuid.UUID) error
}
