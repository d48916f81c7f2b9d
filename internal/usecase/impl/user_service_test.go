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

func createTestUserService(userRepo *stubUserRepo) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})
}

func TestUserService_GetProfile_BumpsVisitCountForOthers(t *testing.T) {
	t.Parallel()

	userRepo := newStubUserRepo()
	target := &entity.User{ID: uuid.New(), Email: "gearhead@example.com", Nickname: "gearhead", VisitCount: 4}
	userRepo.add(target, "hashed:secret")
	svc := createTestUserService(userRepo)

	profile, err := svc.GetProfile(context.Background(), uuid.New(), target.ID)
	require.NoError(t, err)

	assert.Equal(t, 5, profile.VisitCount)
}

func TestUserService_GetProfile_OwnViewDoesNotBump(t *testing.T) {
	t.Parallel()

	userRepo := newStubUserRepo()
	target := &entity.User{ID: uuid.New(), Email: "gearhead@example.com", Nickname: "gearhead", VisitCount: 4}
	userRepo.add(target, "hashed:secret")
	svc := createTestUserService(userRepo)

	profile, err := svc.GetProfile(context.Background(), target.ID, target.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, profile.VisitCount)
}

func TestUserService_GetProfile_Unknown(t *testing.T) {
	t.Parallel()

	svc := createTestUserService(newStubUserRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	t.Parallel()

	userRepo := newStubUserRepo()
	user := &entity.User{ID: uuid.New(), Email: "gearhead@example.com", Nickname: "gearhead", Bio: "old bio"}
	userRepo.add(user, "hashed:secret")
	svc := createTestUserService(userRepo)

	name := "Alex"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, usecase.UpdateProfileInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Alex", updated.Name)
	assert.Equal(t, "old bio", updated.Bio, "unset fields stay untouched")
	assert.Equal(t, "gearhead", updated.Nickname)
}

func TestUserService_UpdateProfile_NicknameTaken(t *testing.T) {
	t.Parallel()

	userRepo := newStubUserRepo()
	user := &entity.User{ID: uuid.New(), Email: "gearhead@example.com", Nickname: "gearhead"}
	rival := &entity.User{ID: uuid.New(), Email: "rival@example.com", Nickname: "speedster"}
	userRepo.add(user, "hashed:secret")
	userRepo.add(rival, "hashed:other")
	svc := createTestUserService(userRepo)

	taken := "speedster"
	_, err := svc.UpdateProfile(context.Background(), user.ID, usecase.UpdateProfileInput{Nickname: &taken})

	assert.ErrorIs(t, err, domainerrors.ErrNicknameTaken)
}

func TestUserService_UpdateProfile_SameNicknameIsNoConflict(t *testing.T) {
	t.Parallel()

	userRepo := newStubUserRepo()
	user := &entity.User{ID: uuid.New(), Email: "gearhead@example.com", Nickname: "gearhead"}
	userRepo.add(user, "hashed:secret")
	svc := createTestUserService(userRepo)

	same := "gearhead"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, usecase.UpdateProfileInput{Nickname: &same})
	require.NoError(t, err)

	assert.Equal(t, "gearhead", updated.Nickname)
}

func TestUserService_UpdateProfile_SocialNetworks(t *testing.T) {
	t.Parallel()

	userRepo := newStubUserRepo()
	user := &entity.User{ID: uuid.New(), Email: "gearhead@example.com", Nickname: "gearhead"}
	userRepo.add(user, "hashed:secret")
	svc := createTestUserService(userRepo)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, usecase.UpdateProfileInput{
		SocialNetworks: map[string]any{"instagram": "@gearhead"},
	})
	require.NoError(t, err)

	assert.Equal(t, "@gearhead", updated.SocialNetworks["instagram"])
}
