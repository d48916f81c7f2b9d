// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"machone/internal/domain/entity"
	domainerrors "machone/internal/domain/errors"
	"machone/internal/domain/repository"
	"machone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishlistRepository implements the domain.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Create persists a new wishlist entry.
func (repo *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistItemModel{
		UserID:    item.UserID,
		DiecastID: item.DiecastID,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrWishlistDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes a wishlist entry.
func (repo *wishlistRepository) Delete(ctx context.Context, userID, diecastID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND diecast_id = ?", userID, diecastID).
		Delete(&model.WishlistItemModel{})
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to delete wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

// Exists reports whether the user has wishlisted the diecast.
func (repo *wishlistRepository) Exists(ctx context.Context, userID, diecastID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.WishlistItemModel{}).
		Where("user_id = ? AND diecast_id = ?", userID, diecastID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check wishlist item")
	}

	return count > 0, nil
}

// ListByUser returns the catalog projections of everything on the user's
// wishlist, most recently added first.
func (repo *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DiecastSummary, error) {
	var itemsM []*model.WishlistItemModel
	err := repo.db.WithContext(ctx).
		Preload("Diecast").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items")
	}

	summaries := make([]*entity.DiecastSummary, 0, len(itemsM))
	for _, itemM := range itemsM {
		if itemM.Diecast == nil {
			continue
		}
		summaries = append(summaries, toDiecastSummary(itemM.Diecast))
	}

	return summaries, nil
}
