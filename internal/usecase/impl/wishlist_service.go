package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "machone/internal/delivery/context"
	"machone/internal/domain/entity"
	domainerrors "machone/internal/domain/errors"
	"machone/internal/domain/repository"
	"machone/internal/usecase"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	diecastRepo  repository.DiecastRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	DiecastRepo  repository.DiecastRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		diecastRepo:  params.DiecastRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add puts a catalog diecast on the caller's wishlist.
func (srv *wishlistService) Add(ctx context.Context, userID, diecastID uuid.UUID) error {
	if _, err := srv.diecastRepo.FindByID(ctx, diecastID); err != nil {
		if errors.Is(err, repository.ErrDiecastNotFound) {
			return domainerrors.ErrDiecastNotFound
		}

		return errors.Wrap(err, "failed to verify diecast for wishlist add")
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		DiecastID: diecastID,
	}

	if err := srv.wishlistRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Warn("Wishlist add failed", slog.Any("userID", userID), slog.Any("diecastID", diecastID), slog.Any("error", err))

		return err
	}

	return nil
}

// Remove takes a diecast off the caller's wishlist.
func (srv *wishlistService) Remove(ctx context.Context, userID, diecastID uuid.UUID) error {
	if err := srv.wishlistRepo.Delete(ctx, userID, diecastID); err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrNotFound.WithDetails("wishlist item not found")
		}

		return errors.Wrap(err, "failed to delete wishlist item")
	}

	return nil
}

// Contains reports whether the diecast is on the caller's wishlist.
func (srv *wishlistService) Contains(ctx context.Context, userID, diecastID uuid.UUID) (bool, error) {
	found, err := srv.wishlistRepo.Exists(ctx, userID, diecastID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check wishlist")
	}

	return found, nil
}

// List returns the catalog projections of the caller's wishlist.
func (srv *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]*entity.DiecastSummary, error) {
	summaries, err := srv.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return summaries, nil
}
