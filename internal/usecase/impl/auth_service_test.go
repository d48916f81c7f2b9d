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

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *stubUserRepo
	hasher   *stubHasher
	tokens   *stubTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := newStubUserRepo()
	hasher := &stubHasher{}
	tokens := &stubTokenService{}

	service := NewAuthService(AuthServiceParams{
		TxManager:    &stubTxManager{factory: &stubFactory{userRepo: userRepo}},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "collector@example.com",
		Nickname: "speedster",
		Password: "a secret phrase",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, "collector@example.com", output.User.Email)
	assert.Equal(t, "speedster", output.User.Nickname)
	assert.NotEqual(t, uuid.Nil, output.User.ID)

	// The stored credential is the hash, never the plaintext.
	assert.Equal(t, "hashed:a secret phrase", fx.userRepo.hashes["collector@example.com"])

	// A later login with the same credentials succeeds.
	login, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "collector@example.com",
		Password: "a secret phrase",
	})
	require.NoError(t, err)
	assert.Equal(t, output.User.ID, login.User.ID)
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "  Collector@Example.COM ",
		Nickname: "speedster",
		Password: "a secret phrase",
	})

	require.NoError(t, err)
	assert.Equal(t, "collector@example.com", output.User.Email)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{ID: uuid.New(), Email: "taken@example.com", Nickname: "other"}, "hashed:x")

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "taken@example.com",
		Nickname: "fresh",
		Password: "a secret phrase",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	fx.hasher.hashErr = assert.AnError

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "collector@example.com",
		Nickname: "speedster",
		Password: "a secret phrase",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Register_ConflictSkipsHashing(t *testing.T) {
	// Uniqueness is checked before any hashing, so a conflicting
	// registration reports the conflict even when the hasher is broken.
	fx := createTestAuthService(t)
	fx.hasher.hashErr = assert.AnError
	fx.userRepo.add(&entity.User{ID: uuid.New(), Email: "taken@example.com", Nickname: "other"}, "hashed:x")

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "taken@example.com",
		Nickname: "fresh",
		Password: "a secret phrase",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_NicknameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{ID: uuid.New(), Email: "other@example.com", Nickname: "taken"}, "hashed:x")

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "fresh@example.com",
		Nickname: "taken",
		Password: "a secret phrase",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNicknameTaken)
}

func TestAuthService_Register_EmailWinsOverNickname(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{ID: uuid.New(), Email: "taken@example.com", Nickname: "taken"}, "hashed:x")

	// Both collide; the caller must see the email conflict.
	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "taken@example.com",
		Nickname: "taken",
		Password: "a secret phrase",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_RaceMapsToConflict(t *testing.T) {
	fx := createTestAuthService(t)
	// A concurrent insert slipped past the pre-checks; the unique index
	// reports through the repository as the same conflict error.
	fx.userRepo.createErr = domainerrors.ErrEmailTaken

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "racer@example.com",
		Nickname: "racer",
		Password: "a secret phrase",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{ID: uuid.New(), Email: "collector@example.com", Nickname: "speedster"}, "hashed:right")

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "collector@example.com",
		Password: "wrong",
	})

	// Indistinguishable from the unknown-email failure.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_IssuesFreshToken(t *testing.T) {
	fx := createTestAuthService(t)
	userID := uuid.New()
	fx.userRepo.add(&entity.User{ID: userID, Email: "collector@example.com", Nickname: "speedster", Role: entity.RoleUser}, "hashed:pw")

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "collector@example.com",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-for-"+userID.String(), output.Token)
	assert.Equal(t, []uuid.UUID{userID}, fx.tokens.issued)
}

func TestAuthService_CurrentUser(t *testing.T) {
	fx := createTestAuthService(t)
	userID := uuid.New()
	fx.userRepo.add(&entity.User{ID: userID, Email: "collector@example.com", Nickname: "speedster"}, "hashed:pw")

	user, err := fx.service.CurrentUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	_, err = fx.service.CurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
