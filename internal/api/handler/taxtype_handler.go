package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiscal/tax-management-system/internal/core/ports"
)

// TaxTypeHandler handles HTTP requests for tax type management.
type TaxTypeHandler struct {
	service ports.TaxTypeService
}

func NewTaxTypeHandler(service ports.TaxTypeService) *TaxTypeHandler {
	return &TaxTypeHandler{service: service}
}

type taxTypeRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Rate        float64 `json:"rate"        validate:"required,gt=0"`
}

// List handles GET /tipos.
//
// @Summary      List all tax types
// @Tags         tax-types
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.TaxType
// @Router       /tipos [get]
func (h *TaxTypeHandler) List(c echo.Context) error {
	taxTypes, err := h.service.ListTaxTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taxTypes)
}

// Get handles GET /tipos/:id.
//
// @Summary      Get a tax type by id
// @Tags         tax-types
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tax type id"
// @Success      200  {object}  domain.TaxType
// @Failure      404  {object}  map[string]any
// @Router       /tipos/{id} [get]
func (h *TaxTypeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	taxType, err := h.service.GetTaxType(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taxType)
}

// Create handles POST /tipos. ADMIN only.
//
// @Summary      Register a new tax type
// @Tags         tax-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taxTypeRequest  true  "Tax type details"
// @Success      201   {object}  domain.TaxType
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /tipos [post]
func (h *TaxTypeHandler) Create(c echo.Context) error {
	var req taxTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	taxType, err := h.service.CreateTaxType(c.Request().Context(), ports.CreateTaxTypeInput{
		Name:        req.Name,
		Description: req.Description,
		Rate:        req.Rate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, taxType)
}

// Delete handles DELETE /tipos/:id. ADMIN only.
//
// @Summary      Delete a tax type
// @Tags         tax-types
// @Security     BearerAuth
// @Param        id  path  int  true  "Tax type id"
// @Success      204
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /tipos/{id} [delete]
func (h *TaxTypeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTaxType(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
