package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fiscal/tax-management-system/internal/core/ports"
)

// CalculationHandler handles tax calculation requests.
type CalculationHandler struct {
	service ports.TaxCalculationService
}

func NewCalculationHandler(service ports.TaxCalculationService) *CalculationHandler {
	return &CalculationHandler{service: service}
}

// The calculation payload keeps the original wire contract, hence the
// Portuguese field names.
type calculationRequest struct {
	TaxTypeID int64   `json:"tipoImpostoId" validate:"required"`
	BaseValue float64 `json:"valorBase"`
}

type calculationResponse struct {
	TaxType   string  `json:"tipoImposto"`
	BaseValue float64 `json:"valorBase"`
	Rate      float64 `json:"aliquota"`
	TaxAmount float64 `json:"valorImposto"`
}

// Calculate handles POST /calculo. ADMIN only.
//
// @Summary      Calculate a tax amount
// @Tags         calculation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      calculationRequest  true  "Tax type id and base value"
// @Success      200   {object}  calculationResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /calculo [post]
func (h *CalculationHandler) Calculate(c echo.Context) error {
	var req calculationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Calculate(c.Request().Context(), req.TaxTypeID, req.BaseValue)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, calculationResponse{
		TaxType:   result.TaxType,
		BaseValue: result.BaseValue,
		Rate:      result.Rate,
		TaxAmount: result.TaxAmount,
	})
}
