package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fiscal/tax-management-system/internal/api/metrics"
	"github.com/fiscal/tax-management-system/internal/core/domain"
	"github.com/fiscal/tax-management-system/internal/core/ports"
	"github.com/fiscal/tax-management-system/internal/core/strategy"
)

// TaxCalculationService resolves a tax type and applies its computation
// strategy to a base value.
type TaxCalculationService struct {
	taxTypes ports.TaxTypeGetter
	logger   zerolog.Logger
}

func NewTaxCalculationService(taxTypes ports.TaxTypeGetter, logger zerolog.Logger) *TaxCalculationService {
	return &TaxCalculationService{taxTypes: taxTypes, logger: logger}
}

// Calculate validates the base value, resolves the tax type and computes the
// amount owed. The returned Rate is the percentage stored on the tax type;
// the computation itself uses the strategy's own constant.
func (s *TaxCalculationService) Calculate(ctx context.Context, taxTypeID int64, baseValue float64) (*ports.CalculationResult, error) {
	if baseValue <= 0 {
		return nil, domain.ErrInvalidBaseValue
	}

	taxType, err := s.taxTypes.GetTaxType(ctx, taxTypeID)
	if err != nil {
		return nil, err
	}

	amount := strategy.ForName(taxType.Name)(baseValue)

	metrics.CalculationsTotal.WithLabelValues(strings.ToUpper(taxType.Name)).Inc()
	s.logger.Info().
		Str("tax_type", taxType.Name).
		Float64("base_value", baseValue).
		Float64("tax_amount", amount).
		Msg("tax calculated")

	return &ports.CalculationResult{
		TaxType:   taxType.Name,
		BaseValue: baseValue,
		Rate:      taxType.Rate,
		TaxAmount: amount,
	}, nil
}
