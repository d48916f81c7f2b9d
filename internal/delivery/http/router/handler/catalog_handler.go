package handler

import (
	"log/slog"
	"net/http"

	"machone/internal/delivery/http/response"
	"machone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// createDiecastRequest is the payload for adding a catalog item.
type createDiecastRequest struct {
	ModelName             string `json:"model_name" validate:"required,max=255"`
	ImageURL              string `json:"image_url" validate:"omitempty,url"`
	CollectorNumber       string `json:"collector_number"`
	SeriesNumber          string `json:"series_number"`
	ReleaseYear           int    `json:"release_year" validate:"omitempty,min=1968"`
	Series                string `json:"series"`
	Color                 string `json:"color"`
	Tampo                 string `json:"tampo"`
	WheelType             string `json:"wheel_type"`
	BaseType              string `json:"base_type"`
	BaseColor             string `json:"base_color"`
	WindowColor           string `json:"window_color"`
	InteriorColor         string `json:"interior_color"`
	ToyNumber             string `json:"toy_number"`
	AssortmentNumber      string `json:"assortment_number"`
	Scale                 string `json:"scale"`
	Country               string `json:"country"`
	BaseCodes             string `json:"base_codes"`
	CaseNumber            string `json:"case_number"`
	Notes                 string `json:"notes"`
	TreasureHuntYear      int    `json:"treasure_hunt_year" validate:"omitempty,min=1995"`
	SuperTreasureHuntYear int    `json:"super_treasure_hunt_year" validate:"omitempty,min=2007"`
}

// Create handles admin catalog item creation.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createDiecastRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	diecast, err := h.uc.Create(c.Request().Context(), usecase.CreateDiecastInput{
		ModelName:             req.ModelName,
		ImageURL:              req.ImageURL,
		CollectorNumber:       req.CollectorNumber,
		SeriesNumber:          req.SeriesNumber,
		ReleaseYear:           req.ReleaseYear,
		Series:                req.Series,
		Color:                 req.Color,
		Tampo:                 req.Tampo,
		WheelType:             req.WheelType,
		BaseType:              req.BaseType,
		BaseColor:             req.BaseColor,
		WindowColor:           req.WindowColor,
		InteriorColor:         req.InteriorColor,
		ToyNumber:             req.ToyNumber,
		AssortmentNumber:      req.AssortmentNumber,
		Scale:                 req.Scale,
		Country:               req.Country,
		BaseCodes:             req.BaseCodes,
		CaseNumber:            req.CaseNumber,
		Notes:                 req.Notes,
		TreasureHuntYear:      req.TreasureHuntYear,
		SuperTreasureHuntYear: req.SuperTreasureHuntYear,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, diecast, "Catalog item created successfully")
}

// Search handles catalog search requests.
// Query parameters: q (required), page, page_size.
func (h *CatalogHandler) Search(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page must be an integer")
	}

	pageSize, err := queryInt(c, "page_size")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page_size must be an integer")
	}

	threshold, err := queryFloat(c, "threshold")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "threshold must be a number")
	}

	output, err := h.uc.Search(c.Request().Context(), usecase.SearchInput{
		Query:     c.QueryParam("q"),
		Page:      page,
		PageSize:  pageSize,
		Threshold: threshold,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Search completed successfully")
}

// GetByID handles single catalog item requests.
func (h *CatalogHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a UUID")
	}

	diecast, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, diecast, "Catalog item retrieved successfully")
}
