package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/fiscal/tax-management-system/internal/api/metrics"
	"github.com/fiscal/tax-management-system/internal/core/domain"
	"github.com/fiscal/tax-management-system/internal/core/ports"
)

// TaxTypeService implements tax type management with a read cache in front
// of the store. Cache failures are soft: they are logged and the lookup
// falls through to the repository.
type TaxTypeService struct {
	repo   ports.TaxTypeRepository
	cache  ports.TaxTypeCache
	logger zerolog.Logger
}

func NewTaxTypeService(repo ports.TaxTypeRepository, cache ports.TaxTypeCache, logger zerolog.Logger) *TaxTypeService {
	return &TaxTypeService{repo: repo, cache: cache, logger: logger}
}

func (s *TaxTypeService) ListTaxTypes(ctx context.Context) ([]*domain.TaxType, error) {
	return s.repo.FindAll(ctx)
}

func (s *TaxTypeService) GetTaxType(ctx context.Context, id int64) (*domain.TaxType, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Int64("tax_type_id", id).Msg("tax type cache read failed")
		case cached != nil:
			metrics.TaxTypeCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.TaxTypeCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	taxType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, taxType); err != nil {
			s.logger.Warn().Err(err).Int64("tax_type_id", id).Msg("tax type cache write failed")
		}
	}
	return taxType, nil
}

func (s *TaxTypeService) CreateTaxType(ctx context.Context, input ports.CreateTaxTypeInput) (*domain.TaxType, error) {
	if _, err := s.repo.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrDuplicateTaxType
	} else if !errors.Is(err, domain.ErrTaxTypeNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.TaxType{
		Name:        input.Name,
		Description: input.Description,
		Rate:        input.Rate,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Float64("rate", created.Rate).Msg("tax type created")
	return created, nil
}

// DeleteTaxType removes a tax type. The existence check runs first so a
// missing id surfaces as not-found instead of a silent no-op delete.
func (s *TaxTypeService) DeleteTaxType(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTaxTypeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("tax_type_id", id).Msg("tax type cache invalidation failed")
		}
	}

	s.logger.Info().Int64("tax_type_id", id).Msg("tax type deleted")
	return nil
}
