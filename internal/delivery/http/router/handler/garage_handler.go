package handler

import (
	"log/slog"
	"net/http"

	"machone/internal/delivery/http/response"
	"machone/internal/domain/entity"
	"machone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GarageHandler holds dependencies for ownership-record handlers.
type GarageHandler struct {
	uc     usecase.GarageUsecase
	logger *slog.Logger
}

// NewGarageHandler is the constructor for GarageHandler, injected by Fx.
func NewGarageHandler(uc usecase.GarageUsecase, logger *slog.Logger) *GarageHandler {
	return &GarageHandler{
		uc:     uc,
		logger: logger,
	}
}

type addGarageItemRequest struct {
	DiecastID    string  `json:"diecast_id" validate:"required,uuid"`
	Modality     string  `json:"modality" validate:"omitempty,oneof=collection sale"`
	Favorite     bool    `json:"favorite"`
	Price        float64 `json:"price" validate:"omitempty,gte=0"`
	Description  string  `json:"description" validate:"omitempty,max=500"`
	Quantity     int     `json:"quantity" validate:"omitempty,gte=1"`
	IsNegotiable bool    `json:"is_negotiable"`
}

type updateGarageItemRequest struct {
	Modality     *string  `json:"modality" validate:"omitempty,oneof=collection sale"`
	Favorite     *bool    `json:"favorite"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	Sold         *bool    `json:"sold"`
	Quantity     *int     `json:"quantity" validate:"omitempty,gte=1"`
	IsNegotiable *bool    `json:"is_negotiable"`
}

// Add handles registering a diecast in the caller's garage.
func (h *GarageHandler) Add(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addGarageItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid garage item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid garage item input")
	}

	diecastID, err := parseRequiredUUID(req.DiecastID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "diecast_id must be a UUID")
	}

	modality := entity.Modality(req.Modality)
	if req.Modality == "" {
		modality = entity.ModalityCollection
	}

	item, err := h.uc.Add(c.Request().Context(), userID, usecase.AddGarageItemInput{
		DiecastID:    diecastID,
		Modality:     modality,
		Favorite:     req.Favorite,
		Price:        req.Price,
		Description:  req.Description,
		Quantity:     req.Quantity,
		IsNegotiable: req.IsNegotiable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Garage item added successfully")
}

// Get handles fetching one of the caller's ownership records.
func (h *GarageHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	diecastID, err := pathUUID(c, "diecastID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "diecastID must be a UUID")
	}

	item, err := h.uc.Get(c.Request().Context(), userID, diecastID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Garage item retrieved successfully")
}

// Update handles partial updates to an ownership record.
func (h *GarageHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	diecastID, err := pathUUID(c, "diecastID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "diecastID must be a UUID")
	}

	var req updateGarageItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid garage item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid garage item input")
	}

	var modality *entity.Modality
	if req.Modality != nil {
		m := entity.Modality(*req.Modality)
		modality = &m
	}

	item, err := h.uc.Update(c.Request().Context(), userID, diecastID, usecase.UpdateGarageItemInput{
		Modality:     modality,
		Favorite:     req.Favorite,
		Price:        req.Price,
		Description:  req.Description,
		Sold:         req.Sold,
		Quantity:     req.Quantity,
		IsNegotiable: req.IsNegotiable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Garage item updated successfully")
}

// Remove handles deleting an ownership record.
func (h *GarageHandler) Remove(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Garage item removed successfully")
}

// List handles paging through the caller's garage.
func (h *GarageHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := queryInt(c, "page")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page must be an integer")
	}

	pageSize, err := queryInt(c, "page_size")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page_size must be an integer")
	}

	output, err := h.uc.List(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Garage retrieved successfully")
}

// ListCards handles paging through the caller's garage joined with catalog
// data, for display views.
func (h *GarageHandler) ListCards(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := queryInt(c, "page")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page must be an integer")
	}

	pageSize, err := queryInt(c, "page_size")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page_size must be an integer")
	}

	output, err := h.uc.ListCards(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Garage cards retrieved successfully")
}
