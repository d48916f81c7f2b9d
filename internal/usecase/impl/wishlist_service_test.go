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

func createTestWishlistService(wishlistRepo *stubWishlistRepo, diecastRepo *stubDiecastRepo) usecase.WishlistUsecase {
	return NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		DiecastRepo:  diecastRepo,
		Logger:       newDiscardLogger(),
	})
}

func TestWishlistService_AddAndList(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	diecastID := uuid.New()
	wishlistRepo := newStubWishlistRepo()
	diecastRepo := &stubDiecastRepo{diecasts: map[uuid.UUID]*entity.Diecast{
		diecastID: {ID: diecastID},
	}}
	svc := createTestWishlistService(wishlistRepo, diecastRepo)

	require.NoError(t, svc.Add(context.Background(), userID, diecastID))

	summaries, err := svc.List(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, diecastID, summaries[0].ID)
}

func TestWishlistService_Add_UnknownDiecast(t *testing.T) {
	t.Parallel()

	svc := createTestWishlistService(newStubWishlistRepo(), &stubDiecastRepo{})

	err := svc.Add(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrDiecastNotFound)
}

func TestWishlistService_Remove(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	diecastID := uuid.New()
	wishlistRepo := newStubWishlistRepo()
	diecastRepo := &stubDiecastRepo{diecasts: map[uuid.UUID]*entity.Diecast{
		diecastID: {ID: diecastID},
	}}
	svc := createTestWishlistService(wishlistRepo, diecastRepo)

	require.NoError(t, svc.Add(context.Background(), userID, diecastID))
	require.NoError(t, svc.Remove(context.Background(), userID, diecastID))

	err := svc.Remove(context.Background(), userID, diecastID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWishlistService_Contains(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	diecastID := uuid.New()
	wishlistRepo := newStubWishlistRepo()
	diecastRepo := &stubDiecastRepo{diecasts: map[uuid.UUID]*entity.Diecast{
		diecastID: {ID: diecastID},
	}}
	svc := createTestWishlistService(wishlistRepo, diecastRepo)

	found, err := svc.Contains(context.Background(), userID, diecastID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, svc.Add(context.Background(), userID, diecastID))

	found, err = svc.Contains(context.Background(), userID, diecastID)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestWishlistService_List_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	wishlistRepo := newStubWishlistRepo()
	diecastRepo := &stubDiecastRepo{diecasts: map[uuid.UUID]*entity.Diecast{
		first:  {ID: first},
		second: {ID: second},
	}}
	svc := createTestWishlistService(wishlistRepo, diecastRepo)

	require.NoError(t, svc.Add(context.Background(), userID, first))
	require.NoError(t, svc.Add(context.Background(), userID, second))

	summaries, err := svc.List(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, first, summaries[0].ID)
	assert.Equal(t, second, summaries[1].ID)
}
