package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"machone/config"
	deliverycontext "machone/internal/delivery/context"
	"machone/internal/domain/entity"
	domainerrors "machone/internal/domain/errors"
	"machone/internal/domain/repository"
	"machone/internal/usecase"
	"machone/internal/util"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	diecastRepo repository.DiecastRepository
	threshold   float64
	defaultSize int
	maxSize     int
	minQueryLen int
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	DiecastRepo repository.DiecastRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	search := params.Config.Search

	return &catalogService{
		diecastRepo: params.DiecastRepo,
		threshold:   search.SimilarityThreshold,
		defaultSize: search.DefaultPageSize,
		maxSize:     search.MaxPageSize,
		minQueryLen: search.MinQueryLength,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search runs the two-stage catalog search. Trigram similarity is the primary
// strategy; substring containment is the fallback. The fallback triggers both
// when the similarity mechanism fails and when it legitimately matches
// nothing, so an overly dissimilar query still gets a broader attempt before
// reporting nothing found. The two triggers are logged distinctly because
// they mean very different things operationally.
func (srv *catalogService) Search(ctx context.Context, input usecase.SearchInput) (*usecase.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if utf8.RuneCountInString(query) < srv.minQueryLen {
		return nil, domainerrors.ErrInvalidSearchQuery.WithDetails("query too short")
	}

	page := input.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, domainerrors.ErrInvalidSearchQuery.WithDetails("page must be positive")
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = srv.defaultSize
	}
	if pageSize < 1 || pageSize > srv.maxSize {
		return nil, domainerrors.ErrInvalidSearchQuery.WithDetails("page size out of range")
	}

	threshold := input.Threshold
	if threshold == 0 {
		threshold = srv.threshold
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, domainerrors.ErrInvalidSearchQuery.WithDetails("similarity threshold must be between 0 and 1 exclusive")
	}

	offset := util.Offset(page, pageSize)

	results, total, strategy, err := srv.runSearch(ctx, query, threshold, pageSize, offset)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("no catalog items matched the query")
	}

	totalPages := util.TotalPages(total, pageSize)

	return &usecase.SearchOutput{
		Results: results,
		Meta: usecase.PageMeta{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
		Strategy: strategy,
	}, nil
}

// runSearch picks the strategy and returns its page plus the matching total.
func (srv *catalogService) runSearch(ctx context.Context, query string, threshold float64, limit, offset int) ([]*entity.DiecastSummary, int64, string, error) {
	total, err := srv.diecastRepo.CountBySimilarity(ctx, query, threshold)
	switch {
	case err != nil:
		srv.logFallback(ctx, query, err)
	case total == 0:
		srv.log(ctx).Debug("Similarity search matched nothing, falling back to substring",
			slog.String("query", query))
	default:
		results, err := srv.diecastRepo.SearchBySimilarity(ctx, query, threshold, limit, offset)
		if err != nil {
			srv.logFallback(ctx, query, err)

			break
		}

		return results, total, usecase.SearchStrategySimilarity, nil
	}

	total, err = srv.diecastRepo.CountBySubstring(ctx, query)
	if err != nil {
		return nil, 0, "", domainerrors.NewDatabaseExecuteError(err, "substring search failed")
	}

	results, err := srv.diecastRepo.SearchBySubstring(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, "", domainerrors.NewDatabaseExecuteError(err, "substring search failed")
	}

	return results, total, usecase.SearchStrategySubstring, nil
}

// logFallback records an infrastructure-driven fallback. A missing pg_trgm
// extension is a deployment problem, not a data problem, so it gets a louder
// log line than an ordinary empty result.
func (srv *catalogService) logFallback(ctx context.Context, query string, err error) {
	if errors.Is(err, repository.ErrSimilarityUnavailable) {
		srv.log(ctx).Warn("Similarity search unavailable, falling back to substring",
			slog.String("query", query), slog.Any("error", err))

		return
	}

	srv.log(ctx).Error("Similarity search failed, falling back to substring",
		slog.String("query", query), slog.Any("error", err))
}

// Create adds a new item to the catalog.
func (srv *catalogService) Create(ctx context.Context, input usecase.CreateDiecastInput) (*entity.Diecast, error) {
	modelName := strings.TrimSpace(input.ModelName)
	if modelName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("model name is required")
	}

	diecast := &entity.Diecast{
		ModelName:             modelName,
		ImageURL:              input.ImageURL,
		CollectorNumber:       input.CollectorNumber,
		SeriesNumber:          input.SeriesNumber,
		ReleaseYear:           input.ReleaseYear,
		Series:                input.Series,
		Color:                 input.Color,
		Tampo:                 input.Tampo,
		WheelType:             input.WheelType,
		BaseType:              input.BaseType,
		BaseColor:             input.BaseColor,
		WindowColor:           input.WindowColor,
		InteriorColor:         input.InteriorColor,
		ToyNumber:             input.ToyNumber,
		AssortmentNumber:      input.AssortmentNumber,
		Scale:                 input.Scale,
		Country:               input.Country,
		BaseCodes:             input.BaseCodes,
		CaseNumber:            input.CaseNumber,
		Notes:                 input.Notes,
		TreasureHuntYear:      input.TreasureHuntYear,
		SuperTreasureHuntYear: input.SuperTreasureHuntYear,
	}

	if err := srv.diecastRepo.Create(ctx, diecast); err != nil {
		srv.log(ctx).Error("Failed to create diecast", slog.String("modelName", modelName), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Catalog item created", slog.Any("diecastID", diecast.ID), slog.String("modelName", modelName))

	return diecast, nil
}

// GetByID fetches one catalog item and bumps its popularity counter. A failed
// counter bump is logged but does not fail the read.
func (srv *catalogService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Diecast, error) {
	diecast, err := srv.diecastRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiecastNotFound) {
			return nil, domainerrors.ErrDiecastNotFound
		}

		return nil, errors.Wrap(err, "failed to load diecast")
	}

	if err := srv.diecastRepo.IncrementVisitCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to bump diecast visit count", slog.Any("diecastID", id), slog.Any("error", err))
	} else {
		diecast.VisitCount++
	}

	return diecast, nil
}
