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

// garageRepository implements the domain.GarageRepository interface using GORM.
type garageRepository struct {
	db *gorm.DB
}

// NewGarageRepository is the constructor for garageRepository.
func NewGarageRepository(db *gorm.DB) repository.GarageRepository {
	return &garageRepository{db: db}
}

// Find retrieves one ownership record by its composite key.
func (repo *garageRepository) Find(ctx context.Context, userID, diecastID uuid.UUID) (*entity.GarageItem, error) {
	var itemM model.GarageItemModel
	err := repo.db.WithContext(ctx).
		First(&itemM, "user_id = ? AND diecast_id = ?", userID, diecastID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGarageItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find garage item")
	}

	return toGarageDomain(&itemM), nil
}

// Create persists a new ownership record. A duplicate composite key maps to
// the domain conflict; a missing user or diecast maps to a reference error.
func (repo *garageRepository) Create(ctx context.Context, item *entity.GarageItem) error {
	itemM := fromGarageDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrGarageDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create garage item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies the mutable fields of an ownership record.
func (repo *garageRepository) Update(ctx context.Context, item *entity.GarageItem) error {
	result := repo.db.WithContext(ctx).Model(&model.GarageItemModel{}).
		Where("user_id = ? AND diecast_id = ?", item.UserID, item.DiecastID).
		Updates(map[string]any{
			"modality":      string(item.Modality),
			"favorite":      item.Favorite,
			"price":         item.Price,
			"description":   item.Description,
			"sold":          item.Sold,
			"quantity":      item.Quantity,
			"is_negotiable": item.IsNegotiable,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update garage item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGarageItemNotFound
	}

	return nil
}

// Delete removes an ownership record.
func (repo *garageRepository) Delete(ctx context.Context, userID, diecastID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND diecast_id = ?", userID, diecastID).
		Delete(&model.GarageItemModel{})
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to delete garage item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGarageItemNotFound
	}

	return nil
}

// ListByUser returns a page of the user's ownership records, newest first.
func (repo *garageRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GarageItem, error) {
	var itemsM []*model.GarageItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&itemsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list garage items")
	}

	items := make([]*entity.GarageItem, 0, len(itemsM))
	for _, itemM := range itemsM {
		items = append(items, toGarageDomain(itemM))
	}

	return items, nil
}

// CountByUser counts the user's ownership records.
func (repo *garageRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).Model(&model.GarageItemModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count garage items")
	}

	return total, nil
}

// ListCardsByUser returns a page of ownership records joined with their
// catalog projections, newest first.
func (repo *garageRepository) ListCardsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GarageCard, error) {
	var itemsM []*model.GarageItemModel
	err := repo.db.WithContext(ctx).
		Preload("Diecast").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&itemsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list garage cards")
	}

	cards := make([]*entity.GarageCard, 0, len(itemsM))
	for _, itemM := range itemsM {
		card := &entity.GarageCard{
			Modality:     entity.Modality(itemM.Modality),
			Favorite:     itemM.Favorite,
			Price:        itemM.Price,
			Description:  itemM.Description,
			Sold:         itemM.Sold,
			Quantity:     itemM.Quantity,
			IsNegotiable: itemM.IsNegotiable,
			VisitCount:   itemM.VisitCount,
		}
		if itemM.Diecast != nil {
			card.Diecast = *toDiecastSummary(itemM.Diecast)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// toGarageDomain maps the persistence model to the pure domain entity.
func toGarageDomain(itemM *model.GarageItemModel) *entity.GarageItem {
	return &entity.GarageItem{
		UserID:       itemM.UserID,
		DiecastID:    itemM.DiecastID,
		Modality:     entity.Modality(itemM.Modality),
		Favorite:     itemM.Favorite,
		Price:        itemM.Price,
		Description:  itemM.Description,
		Sold:         itemM.Sold,
		Quantity:     itemM.Quantity,
		IsNegotiable: itemM.IsNegotiable,
		VisitCount:   itemM.VisitCount,
		CreatedAt:    itemM.CreatedAt,
		UpdatedAt:    itemM.UpdatedAt,
	}
}

// fromGarageDomain maps the domain entity to the persistence model.
func fromGarageDomain(item *entity.GarageItem) *model.GarageItemModel {
	return &model.GarageItemModel{
		UserID:       item.UserID,
		DiecastID:    item.DiecastID,
		Modality:     string(item.Modality),
		Favorite:     item.Favorite,
		Price:        item.Price,
		Description:  item.Description,
		Sold:         item.Sold,
		Quantity:     item.Quantity,
		IsNegotiable: item.IsNegotiable,
		VisitCount:   item.VisitCount,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
