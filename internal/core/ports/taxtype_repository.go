package ports

import (
	"context"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

// TaxTypeRepository defines persistence operations for tax types. Lookups
// return domain.ErrTaxTypeNotFound when no row matches; Create maps unique
// name conflicts to domain.ErrDuplicateTaxType.
type TaxTypeRepository interface {
	FindAll(ctx context.Context) ([]*domain.TaxType, error)
	FindByID(ctx context.Context, id int64) (*domain.TaxType, error)
	FindByName(ctx context.Context, name string) (*domain.TaxType, error)
	Create(ctx context.Context, taxType *domain.TaxType) (*domain.TaxType, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// TaxTypeCache is a read cache in front of the tax type store. Get returns
// (nil, nil) on a miss; a non-nil error means the cache backend failed and
// callers should fall through to the repository.
type TaxTypeCache interface {
	Get(ctx context.Context, id int64) (*domain.TaxType, error)
	Set(ctx context.Context, taxType *domain.TaxType) error
	Invalidate(ctx context.Context, id int64) error
}
