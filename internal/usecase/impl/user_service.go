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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile fetches a user's profile. Views by other users bump the visit
// counter; looking at your own profile does not.
func (srv *userService) GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	if viewerID != userID {
		if err := srv.userRepo.IncrementVisitCount(ctx, userID); err != nil {
			srv.log(ctx).Warn("Failed to bump profile visit count", slog.Any("userID", userID), slog.Any("error", err))
		} else {
			user.VisitCount++
		}
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's own profile. Only
// non-nil fields change.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile for update")
	}

	if input.Nickname != nil && *input.Nickname != user.Nickname {
		// Pre-check keeps the common case friendly; the unique index still
		// backs it up on a race.
		if _, err := srv.userRepo.FindByNickname(ctx, *input.Nickname); err == nil {
			return nil, domainerrors.ErrNicknameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check nickname availability")
		}
		user.Nickname = *input.Nickname
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.SocialNetworks != nil {
		user.SocialNetworks = input.SocialNetworks
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}
