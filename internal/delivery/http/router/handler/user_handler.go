package handler

import (
	"log/slog"
	"net/http"

	"machone/internal/delivery/http/response"
	"machone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for public profile handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	Nickname       *string        `json:"nickname" validate:"omitempty,min=3,max=50"`
	Name           *string        `json:"name" validate:"omitempty,max=100"`
	Bio            *string        `json:"bio" validate:"omitempty,max=500"`
	AvatarURL      *string        `json:"avatar_url" validate:"omitempty,url"`
	Phone          *string        `json:"phone" validate:"omitempty,max=30"`
	SocialNetworks map[string]any `json:"social_networks"`
}

// GetProfile handles the request for another collector's public profile.
// Viewing someone else's profile bumps their visit counter.
func (h *UserHandler) GetProfile(c echo.Context) error {
	viewerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a UUID")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), viewerID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles partial updates to the caller's own profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Nickname:       req.Nickname,
		Name:           req.Name,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
		Phone:          req.Phone,
		SocialNetworks: req.SocialNetworks,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}
