package handler

import (
	"log/slog"
	"net/http"

	"machone/internal/delivery/http/response"
	"machone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollectionHandler holds dependencies for showcase collection handlers.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCollectionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type updateCollectionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type addCollectionItemRequest struct {
	DiecastID string `json:"diecast_id" validate:"required,uuid"`
}

// Create handles creating a new collection at the end of the caller's
// display order.
func (h *CollectionHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createCollectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid collection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection input")
	}

	collection, err := h.uc.Create(c.Request().Context(), userID, usecase.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, collection, "Collection created successfully")
}

// Get handles fetching one collection with its items.
func (h *CollectionHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a UUID")
	}

	collection, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collection, "Collection retrieved successfully")
}

// ListMine handles listing the caller's collections in display order.
func (h *CollectionHandler) ListMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	collections, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collections, "Collections retrieved successfully")
}

// Update handles renaming or re-describing a collection.
func (h *CollectionHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a UUID")
	}

	var req updateCollectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid collection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection input")
	}

	collection, err := h.uc.Update(c.Request().Context(), userID, id, usecase.UpdateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collection, "Collection updated successfully")
}

// Delete handles removing a collection and its items.
func (h *CollectionHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a UUID")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Collection deleted successfully")
}

// AddItem handles appending a diecast at the end of a collection.
func (h *CollectionHandler) AddItem(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a UUID")
	}

	var req addCollectionItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid collection item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection item input")
	}

	diecastID, err := parseRequiredUUID(req.DiecastID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "diecast_id must be a UUID")
	}

	item, err := h.uc.AddItem(c.Request().Context(), userID, id, diecastID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Collection item added successfully")
}

// RemoveItem handles deleting one item from a collection.
func (h *CollectionHandler) RemoveItem(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a UUID")
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "itemID must be a UUID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, id, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Collection item removed successfully")
}
