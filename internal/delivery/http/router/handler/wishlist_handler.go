package handler

import (
	"log/slog"
	"net/http"

	"machone/internal/delivery/http/response"
	"machone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for want-list handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

type addWishlistItemRequest struct {
	DiecastID string `json:"diecast_id" validate:"required,uuid"`
}

// Add handles putting a catalog diecast on the caller's wishlist.
func (h *WishlistHandler) Add(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	diecastID, err := parseRequiredUUID(req.DiecastID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "diecast_id must be a UUID")
	}

	if err := h.uc.Add(c.Request().Context(), userID, diecastID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Wishlist item added successfully")
}

// Remove handles taking a diecast off the caller's wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	diecastID, err := pathUUID(c, "diecastID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "diecastID must be a UUID")
	}

	if err := h.uc.Remove(c.Request().Context(), userID, diecastID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wishlist item removed successfully")
}

// Contains reports whether a diecast is already on the caller's wishlist.
func (h *WishlistHandler) Contains(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	diecastID, err := pathUUID(c, "diecastID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "diecastID must be a UUID")
	}

	found, err := h.uc.Contains(c.Request().Context(), userID, diecastID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"wishlisted": found}, "Wishlist checked successfully")
}

// List handles returning the caller's wishlist as catalog projections.
func (h *WishlistHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Wishlist retrieved successfully")
}
