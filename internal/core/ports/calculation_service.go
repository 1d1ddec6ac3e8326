package ports

import (
	"context"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

// TaxTypeGetter is the narrow read surface the calculation flow needs.
type TaxTypeGetter interface {
	GetTaxType(ctx context.Context, id int64) (*domain.TaxType, error)
}

// CalculationResult is the outcome of a tax calculation. Rate is the
// percentage stored on the resolved tax type, not the strategy constant.
type CalculationResult struct {
	TaxType   string
	BaseValue float64
	Rate      float64
	TaxAmount float64
}

type TaxCalculationService interface {
	Calculate(ctx context.Context, taxTypeID int64, baseValue float64) (*CalculationResult, error)
}
