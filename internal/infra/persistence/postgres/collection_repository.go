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

// collectionRepository implements the domain.CollectionRepository interface using GORM.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

// FindByID retrieves a collection with its items ordered by position.
func (repo *collectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	var collectionM model.CollectionModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&collectionM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection by id")
	}

	return toCollectionDomain(&collectionM), nil
}

// ListByUser returns the user's collections ordered by display order.
func (repo *collectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	var collectionsM []*model.CollectionModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("display_order ASC").
		Find(&collectionsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	collections := make([]*entity.Collection, 0, len(collectionsM))
	for _, collectionM := range collectionsM {
		collections = append(collections, toCollectionDomain(collectionM))
	}

	return collections, nil
}

// MaxDisplayOrder returns the highest display order among the user's
// collections, or zero when they have none.
func (repo *collectionRepository) MaxDisplayOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	var maxOrder int
	err := repo.db.WithContext(ctx).Model(&model.CollectionModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to query max display order")
	}

	return maxOrder, nil
}

// Create persists a new collection. A display order collision (two creations
// racing inside separate transactions) maps to the domain conflict.
func (repo *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Create(collectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDisplayOrderConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
	}

	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt
	collection.UpdatedAt = collectionM.UpdatedAt

	return nil
}

// Update modifies a collection's name and description.
func (repo *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	result := repo.db.WithContext(ctx).Model(&model.CollectionModel{}).
		Where("id = ?", collection.ID).
		Updates(map[string]any{
			"name":        collection.Name,
			"description": collection.Description,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update collection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// Delete removes a collection and its items.
func (repo *collectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("collection_id = ?", id).
		Delete(&model.CollectionItemModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete collection items")
	}

	result := repo.db.WithContext(ctx).Delete(&model.CollectionModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to delete collection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// MaxItemPosition returns the highest item position within a collection, or
// zero when it is empty.
func (repo *collectionRepository) MaxItemPosition(ctx context.Context, collectionID uuid.UUID) (int, error) {
	var maxPosition int
	err := repo.db.WithContext(ctx).Model(&model.CollectionItemModel{}).
		Where("collection_id = ?", collectionID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to query max item position")
	}

	return maxPosition, nil
}

// AddItem persists a new collection item.
func (repo *collectionRepository) AddItem(ctx context.Context, item *entity.CollectionItem) error {
	itemM := fromCollectionItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add collection item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// RemoveItem deletes one item from a collection.
func (repo *collectionRepository) RemoveItem(ctx context.Context, collectionID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("collection_id = ? AND id = ?", collectionID, itemID).
		Delete(&model.CollectionItemModel{})
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to remove collection item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCollectionItemNotFound
	}

	return nil
}

// toCollectionDomain maps the persistence model to the pure domain entity.
func toCollectionDomain(collectionM *model.CollectionModel) *entity.Collection {
	items := make([]*entity.CollectionItem, 0, len(collectionM.Items))
	for _, itemM := range collectionM.Items {
		items = append(items, toCollectionItemDomain(itemM))
	}

	return &entity.Collection{
		ID:           collectionM.ID,
		UserID:       collectionM.UserID,
		Name:         collectionM.Name,
		Description:  collectionM.Description,
		DisplayOrder: collectionM.DisplayOrder,
		Items:        items,
		CreatedAt:    collectionM.CreatedAt,
		UpdatedAt:    collectionM.UpdatedAt,
	}
}

func toCollectionItemDomain(itemM *model.CollectionItemModel) *entity.CollectionItem {
	return &entity.CollectionItem{
		ID:           itemM.ID,
		CollectionID: itemM.CollectionID,
		DiecastID:    itemM.DiecastID,
		Position:     itemM.Position,
		CreatedAt:    itemM.CreatedAt,
		UpdatedAt:    itemM.UpdatedAt,
	}
}

// fromCollectionDomain maps the domain entity to the persistence model.
// Items are persisted separately through AddItem.
func fromCollectionDomain(collection *entity.Collection) *model.CollectionModel {
	return &model.CollectionModel{
		ID:           collection.ID,
		UserID:       collection.UserID,
		Name:         collection.Name,
		Description:  collection.Description,
		DisplayOrder: collection.DisplayOrder,
	}
}

func fromCollectionItemDomain(item *entity.CollectionItem) *model.CollectionItemModel {
	return &model.CollectionItemModel{
		ID:           item.ID,
		CollectionID: item.CollectionID,
		DiecastID:    item.DiecastID,
		Position:     item.Position,
	}
}
