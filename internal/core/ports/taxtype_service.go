package ports

import (
	"context"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

// CreateTaxTypeInput carries the data needed to register a new tax type.
type CreateTaxTypeInput struct {
	Name        string
	Description string
	Rate        float64
}

type TaxTypeService interface {
	ListTaxTypes(ctx context.Context) ([]*domain.TaxType, error)
	GetTaxType(ctx context.Context, id int64) (*domain.TaxType, error)
	CreateTaxType(ctx context.Context, input CreateTaxTypeInput) (*domain.TaxType, error)
	DeleteTaxType(ctx context.Context, id int64) error
}
