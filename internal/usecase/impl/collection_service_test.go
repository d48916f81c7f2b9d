package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machone/internal/domain/entity"
	domainerrors "machone/internal/domain/errors"
	"machone/internal/usecase"
)

func createTestCollectionService(collectionRepo *stubCollectionRepo, diecastRepo *stubDiecastRepo) usecase.CollectionUsecase {
	return NewCollectionService(CollectionServiceParams{
		TxManager:      &stubTxManager{factory: &stubFactory{collectionRepo: collectionRepo}},
		CollectionRepo: collectionRepo,
		DiecastRepo:    diecastRepo,
		Logger:         newDiscardLogger(),
	})
}

func TestCollectionService_Create_AppendsDisplayOrder(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionRepo := newStubCollectionRepo()
	collectionRepo.add(&entity.Collection{UserID: userID, Name: "JDM legends", DisplayOrder: 3})
	svc := createTestCollectionService(collectionRepo, &stubDiecastRepo{})

	created, err := svc.Create(context.Background(), userID, usecase.CreateCollectionInput{Name: "Muscle"})
	require.NoError(t, err)

	assert.Equal(t, 4, created.DisplayOrder, "new collections go to the end of the shelf")
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCollectionService_Create_RequiresName(t *testing.T) {
	t.Parallel()

	svc := createTestCollectionService(newStubCollectionRepo(), &stubDiecastRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), usecase.CreateCollectionInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCollectionService_Create_OrdersArePerUser(t *testing.T) {
	t.Parallel()

	collectionRepo := newStubCollectionRepo()
	collectionRepo.add(&entity.Collection{UserID: uuid.New(), Name: "Someone else's", DisplayOrder: 9})
	svc := createTestCollectionService(collectionRepo, &stubDiecastRepo{})

	created, err := svc.Create(context.Background(), uuid.New(), usecase.CreateCollectionInput{Name: "Mine"})
	require.NoError(t, err)

	assert.Equal(t, 1, created.DisplayOrder)
}

func TestCollectionService_Update_OwnerOnly(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	collectionRepo := newStubCollectionRepo()
	collection := &entity.Collection{UserID: ownerID, Name: "Originals"}
	collectionRepo.add(collection)
	svc := createTestCollectionService(collectionRepo, &stubDiecastRepo{})

	newName := "Renamed"
	_, err := svc.Update(context.Background(), uuid.New(), collection.ID, usecase.UpdateCollectionInput{Name: &newName})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := svc.Update(context.Background(), ownerID, collection.ID, usecase.UpdateCollectionInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestCollectionService_Delete(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	collectionRepo := newStubCollectionRepo()
	collection := &entity.Collection{UserID: ownerID, Name: "Short lived"}
	collectionRepo.add(collection)
	svc := createTestCollectionService(collectionRepo, &stubDiecastRepo{})

	require.NoError(t, svc.Delete(context.Background(), ownerID, collection.ID))

	_, err := svc.Get(context.Background(), collection.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
}

func TestCollectionService_AddItem_AppendsPosition(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	diecastID := uuid.New()
	collectionRepo := newStubCollectionRepo()
	collection := &entity.Collection{
		UserID: ownerID,
		Name:   "Shelf",
		Items: []*entity.CollectionItem{
			{ID: uuid.New(), DiecastID: uuid.New(), Position: 2},
		},
	}
	collectionRepo.add(collection)
	diecastRepo := &stubDiecastRepo{diecasts: map[uuid.UUID]*entity.Diecast{
		diecastID: {ID: diecastID},
	}}
	svc := createTestCollectionService(collectionRepo, diecastRepo)

	item, err := svc.AddItem(context.Background(), ownerID, collection.ID, diecastID)
	require.NoError(t, err)

	assert.Equal(t, 3, item.Position)
	assert.Equal(t, collection.ID, item.CollectionID)
}

func TestCollectionService_AddItem_UnknownDiecast(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	collectionRepo := newStubCollectionRepo()
	collection := &entity.Collection{UserID: ownerID, Name: "Shelf"}
	collectionRepo.add(collection)
	svc := createTestCollectionService(collectionRepo, &stubDiecastRepo{})

	_, err := svc.AddItem(context.Background(), ownerID, collection.ID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrDiecastNotFound)
}

func TestCollectionService_RemoveItem(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	itemID := uuid.New()
	collectionRepo := newStubCollectionRepo()
	collection := &entity.Collection{
		UserID: ownerID,
		Name:   "Shelf",
		Items: []*entity.CollectionItem{
			{ID: itemID, DiecastID: uuid.New(), Position: 1},
		},
	}
	collectionRepo.add(collection)
	svc := createTestCollectionService(collectionRepo, &stubDiecastRepo{})

	require.NoError(t, svc.RemoveItem(context.Background(), ownerID, collection.ID, itemID))

	err := svc.RemoveItem(context.Background(), ownerID, collection.ID, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCollectionService_Get_Unknown(t *testing.T) {
	t.Parallel()

	svc := createTestCollectionService(newStubCollectionRepo(), &stubDiecastRepo{})

	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
}
