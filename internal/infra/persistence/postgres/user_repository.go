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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByNickname retrieves a single user by their nickname.
func (repo *userRepository) FindByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "nickname = ?", nickname).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by nickname")
	}

	return toUserDomain(&userM), nil
}

// FindCredentialByEmail retrieves a user together with their stored password
// hash. This is the only read path that exposes the hash, and it stops at the
// use case layer.
func (repo *userRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.User, string, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", repository.ErrUserNotFound
		}

		return nil, "", errors.Wrap(err, "failed to find user credential by email")
	}

	return toUserDomain(&userM), userM.PasswordHash, nil
}

// Create persists a new user entity together with the password hash.
// Unique violations are mapped to the same domain conflicts the pre-checks
// produce, so a registration racing past the checks still reports correctly.
// When both columns collide the email conflict wins.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			constraint := violatedConstraint(err)
			switch {
			case isNicknameConstraint(constraint):
				return domainerrors.ErrNicknameTaken
			case isEmailConstraint(constraint):
				return domainerrors.ErrEmailTaken
			default:
				return domainerrors.ErrEmailTaken
			}
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user's profile fields.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"nickname":        userM.Nickname,
			"name":            userM.Name,
			"bio":             userM.Bio,
			"avatar_url":      userM.AvatarURL,
			"phone":           userM.Phone,
			"social_networks": userM.SocialNetworks,
			"is_active":       userM.IsActive,
			"last_seen":       userM.LastSeen,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNicknameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// IncrementVisitCount bumps the profile visit counter atomically.
func (repo *userRepository) IncrementVisitCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1"))
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to increment user visit count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain maps the persistence model to the pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:             userM.ID,
		Email:          userM.Email,
		Nickname:       userM.Nickname,
		Name:           userM.Name,
		Bio:            userM.Bio,
		AvatarURL:      userM.AvatarURL,
		Phone:          userM.Phone,
		SocialNetworks: userM.SocialNetworks,
		Role:           entity.RoleFromString(userM.Role),
		IsActive:       userM.IsActive,
		VisitCount:     userM.VisitCount,
		LastSeen:       userM.LastSeen,
		CreatedAt:      userM.CreatedAt,
		UpdatedAt:      userM.UpdatedAt,
	}
}

// fromUserDomain maps the domain entity to the persistence model. The
// password hash is attached separately by the caller.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             user.ID,
		Email:          user.Email,
		Nickname:       user.Nickname,
		Name:           user.Name,
		Bio:            user.Bio,
		AvatarURL:      user.AvatarURL,
		Phone:          user.Phone,
		SocialNetworks: user.SocialNetworks,
		Role:           user.Role.String(),
		IsActive:       user.IsActive,
		VisitCount:     user.VisitCount,
		LastSeen:       user.LastSeen,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
