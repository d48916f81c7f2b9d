package impl

import (
	"context"
	"log/slog"

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

// garageService implements the GarageUsecase interface.
type garageService struct {
	garageRepo  repository.GarageRepository
	diecastRepo repository.DiecastRepository
	defaultSize int
	maxSize     int
	logger      *slog.Logger
}

// GarageServiceParams holds dependencies for garageService, injected by Fx.
type GarageServiceParams struct {
	fx.In

	GarageRepo  repository.GarageRepository
	DiecastRepo repository.DiecastRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewGarageService is the constructor for garageService.
func NewGarageService(params GarageServiceParams) usecase.GarageUsecase {
	return &garageService{
		garageRepo:  params.GarageRepo,
		diecastRepo: params.DiecastRepo,
		defaultSize: params.Config.Search.DefaultPageSize,
		maxSize:     params.Config.Search.MaxPageSize,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *garageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add registers a diecast in the caller's garage. The diecast must exist in
// the catalog; one row per (user, diecast) is enforced by the composite key.
func (srv *garageService) Add(ctx context.Context, userID uuid.UUID, input usecase.AddGarageItemInput) (*entity.GarageItem, error) {
	if !input.Modality.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown modality")
	}

	if _, err := srv.diecastRepo.FindByID(ctx, input.DiecastID); err != nil {
		if errors.Is(err, repository.ErrDiecastNotFound) {
			return nil, domainerrors.ErrDiecastNotFound
		}

		return nil, errors.Wrap(err, "failed to verify diecast for garage add")
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := &entity.GarageItem{
		UserID:       userID,
		DiecastID:    input.DiecastID,
		Modality:     input.Modality,
		Favorite:     input.Favorite,
		Price:        input.Price,
		Description:  input.Description,
		Quantity:     quantity,
		IsNegotiable: input.IsNegotiable,
	}

	if err := srv.garageRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Warn("Garage add failed", slog.Any("userID", userID), slog.Any("diecastID", input.DiecastID), slog.Any("error", err))

		return nil, err
	}

	return item, nil
}

// Get fetches one of the caller's ownership records.
func (srv *garageService) Get(ctx context.Context, userID, diecastID uuid.UUID) (*entity.GarageItem, error) {
	item, err := srv.garageRepo.Find(ctx, userID, diecastID)
	if err != nil {
		if errors.Is(err, repository.ErrGarageItemNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("garage item not found")
		}

		return nil, errors.Wrap(err, "failed to load garage item")
	}

	return item, nil
}

// Update applies a partial update to an ownership record.
func (srv *garageService) Update(ctx context.Context, userID, diecastID uuid.UUID, input usecase.UpdateGarageItemInput) (*entity.GarageItem, error) {
	item, err := srv.garageRepo.Find(ctx, userID, diecastID)
	if err != nil {
		if errors.Is(err, repository.ErrGarageItemNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("garage item not found")
		}

		return nil, errors.Wrap(err, "failed to load garage item for update")
	}

	if input.Modality != nil {
		if !input.Modality.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown modality")
		}
		item.Modality = *input.Modality
	}
	if input.Favorite != nil {
		item.Favorite = *input.Favorite
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Sold != nil {
		item.Sold = *input.Sold
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}
		item.Quantity = *input.Quantity
	}
	if input.IsNegotiable != nil {
		item.IsNegotiable = *input.IsNegotiable
	}

	if err := srv.garageRepo.Update(ctx, item); err != nil {
		srv.log(ctx).Warn("Garage update failed", slog.Any("userID", userID), slog.Any("diecastID", diecastID), slog.Any("error", err))

		return nil, err
	}

	return item, nil
}

// Remove deletes an ownership record.
func (srv *garageService) Remove(ctx context.Context, userID, diecastID uuid.UUID) error {
	if err := srv.garageRepo.Delete(ctx, userID, diecastID); err != nil {
		if errors.Is(err, repository.ErrGarageItemNotFound) {
			return domainerrors.ErrNotFound.WithDetails("garage item not found")
		}

		return errors.Wrap(err, "failed to delete garage item")
	}

	return nil
}

// List returns a page of a user's ownership records.
func (srv *garageService) List(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.GarageListOutput, error) {
	page, pageSize, err := srv.normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := srv.garageRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count garage items")
	}

	items, err := srv.garageRepo.ListByUser(ctx, userID, pageSize, util.Offset(page, pageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list garage items")
	}

	return &usecase.GarageListOutput{
		Items: items,
		Meta:  buildPageMeta(page, pageSize, total),
	}, nil
}

// ListCards returns a page of a user's garage joined with catalog projections.
func (srv *garageService) ListCards(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.GarageCardsOutput, error) {
	page, pageSize, err := srv.normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := srv.garageRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count garage items")
	}

	cards, err := srv.garageRepo.ListCardsByUser(ctx, userID, pageSize, util.Offset(page, pageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list garage cards")
	}

	return &usecase.GarageCardsOutput{
		Cards: cards,
		Meta:  buildPageMeta(page, pageSize, total),
	}, nil
}

func (srv *garageService) normalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("page must be positive")
	}
	if pageSize == 0 {
		pageSize = srv.defaultSize
	}
	if pageSize < 1 || pageSize > srv.maxSize {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("page size out of range")
	}

	return page, pageSize, nil
}

// buildPageMeta assembles the standard pagination envelope.
func buildPageMeta(page, pageSize int, total int64) usecase.PageMeta {
	totalPages := util.TotalPages(total, pageSize)

	return usecase.PageMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
