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

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	txManager      repository.TransactionManager
	collectionRepo repository.CollectionRepository
	diecastRepo    repository.DiecastRepository
	logger         *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CollectionRepo repository.CollectionRepository
	DiecastRepo    repository.DiecastRepository
	Logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:      params.TxManager,
		collectionRepo: params.CollectionRepo,
		diecastRepo:    params.DiecastRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new collection at the end of the caller's display order. The
// max lookup and the insert run in one transaction so two concurrent creates
// cannot claim the same slot; a unique-index race still maps to a conflict.
func (srv *collectionService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreateCollectionInput) (*entity.Collection, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("collection name is required")
	}

	var created *entity.Collection
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		maxOrder, err := collectionRepo.MaxDisplayOrder(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to determine display order")
		}

		collection := &entity.Collection{
			UserID:       userID,
			Name:         input.Name,
			Description:  input.Description,
			DisplayOrder: maxOrder + 1,
		}

		if err := collectionRepo.Create(ctx, collection); err != nil {
			return err
		}

		created = collection

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Collection create failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return created, nil
}

// Get fetches one collection with its items.
func (srv *collectionService) Get(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	collection, err := srv.collectionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return nil, domainerrors.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to load collection")
	}

	return collection, nil
}

// ListByUser returns a user's collections in display order.
func (srv *collectionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	collections, err := srv.collectionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	return collections, nil
}

// Update renames or re-describes a collection owned by the caller.
func (srv *collectionService) Update(ctx context.Context, userID, collectionID uuid.UUID, input usecase.UpdateCollectionInput) (*entity.Collection, error) {
	collection, err := srv.ownedCollection(ctx, userID, collectionID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("collection name is required")
		}
		collection.Name = *input.Name
	}
	if input.Description != nil {
		collection.Description = *input.Description
	}

	if err := srv.collectionRepo.Update(ctx, collection); err != nil {
		srv.log(ctx).Warn("Collection update failed", slog.Any("collectionID", collectionID), slog.Any("error", err))

		return nil, err
	}

	return collection, nil
}

// Delete removes a collection and its items.
func (srv *collectionService) Delete(ctx context.Context, userID, collectionID uuid.UUID) error {
	if _, err := srv.ownedCollection(ctx, userID, collectionID); err != nil {
		return err
	}

	if err := srv.collectionRepo.Delete(ctx, collectionID); err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return domainerrors.ErrCollectionNotFound
		}

		return errors.Wrap(err, "failed to delete collection")
	}

	return nil
}

// AddItem appends a diecast at the end of the collection. Position assignment
// and insert run in one transaction.
func (srv *collectionService) AddItem(ctx context.Context, userID, collectionID, diecastID uuid.UUID) (*entity.CollectionItem, error) {
	if _, err := srv.ownedCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}

	if _, err := srv.diecastRepo.FindByID(ctx, diecastID); err != nil {
		if errors.Is(err, repository.ErrDiecastNotFound) {
			return nil, domainerrors.ErrDiecastNotFound
		}

		return nil, errors.Wrap(err, "failed to verify diecast for collection add")
	}

	var added *entity.CollectionItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		maxPosition, err := collectionRepo.MaxItemPosition(ctx, collectionID)
		if err != nil {
			return errors.Wrap(err, "failed to determine item position")
		}

		item := &entity.CollectionItem{
			CollectionID: collectionID,
			DiecastID:    diecastID,
			Position:     maxPosition + 1,
		}

		if err := collectionRepo.AddItem(ctx, item); err != nil {
			return err
		}

		added = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Collection item add failed", slog.Any("collectionID", collectionID), slog.Any("error", err))

		return nil, err
	}

	return added, nil
}

// RemoveItem deletes one item from a collection owned by the caller.
func (srv *collectionService) RemoveItem(ctx context.Context, userID, collectionID, itemID uuid.UUID) error {
	if _, err := srv.ownedCollection(ctx, userID, collectionID); err != nil {
		return err
	}

	if err := srv.collectionRepo.RemoveItem(ctx, collectionID, itemID); err != nil {
		if errors.Is(err, repository.ErrCollectionItemNotFound) {
			return domainerrors.ErrNotFound.WithDetails("collection item not found")
		}

		return errors.Wrap(err, "failed to remove collection item")
	}

	return nil
}

// ownedCollection loads a collection and verifies the caller owns it.
func (srv *collectionService) ownedCollection(ctx context.Context, userID, collectionID uuid.UUID) (*entity.Collection, error) {
	collection, err := srv.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return nil, domainerrors.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to load collection")
	}

	if collection.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return collection, nil
}
