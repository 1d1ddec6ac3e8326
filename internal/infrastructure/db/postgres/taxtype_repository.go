package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

const taxTypeColumns = `id, name, description, rate`

// TaxTypeRepository persists tax types in PostgreSQL.
type TaxTypeRepository struct {
	pool *pgxpool.Pool
}

func NewTaxTypeRepository(pool *pgxpool.Pool) *TaxTypeRepository {
	return &TaxTypeRepository{pool: pool}
}

func (r *TaxTypeRepository) FindAll(ctx context.Context) ([]*domain.TaxType, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taxTypeColumns+` FROM tax_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tax types: %w", err)
	}
	defer rows.Close()

	taxTypes := make([]*domain.TaxType, 0)
	for rows.Next() {
		taxType, err := scanTaxType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tax type: %w", err)
		}
		taxTypes = append(taxTypes, taxType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tax types: %w", err)
	}
	return taxTypes, nil
}

func (r *TaxTypeRepository) FindByID(ctx context.Context, id int64) (*domain.TaxType, error) {
	return r.findOne(ctx, `SELECT `+taxTypeColumns+` FROM tax_types WHERE id = $1`, id)
}

func (r *TaxTypeRepository) FindByName(ctx context.Context, name string) (*domain.TaxType, error) {
	return r.findOne(ctx, `SELECT `+taxTypeColumns+` FROM tax_types WHERE name = $1`, name)
}

func (r *TaxTypeRepository) Create(ctx context.Context, taxType *domain.TaxType) (*domain.TaxType, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO tax_types (name, description, rate)
		 VALUES ($1, $2, $3)
		 RETURNING `+taxTypeColumns,
		taxType.Name, taxType.Description, taxType.Rate,
	)

	created, err := scanTaxType(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateTaxType
		}
		return nil, fmt.Errorf("insert tax type: %w", err)
	}
	return created, nil
}

func (r *TaxTypeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM tax_types WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tax type: %w", err)
	}
	return nil
}

func (r *TaxTypeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tax_types WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("tax type exists: %w", err)
	}
	return exists, nil
}

func (r *TaxTypeRepository) findOne(ctx context.Context, query string, arg any) (*domain.TaxType, error) {
	taxType, err := scanTaxType(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaxTypeNotFound
		}
		return nil, fmt.Errorf("find tax type: %w", err)
	}
	return taxType, nil
}

func scanTaxType(row pgx.Row) (*domain.TaxType, error) {
	var t domain.TaxType
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Rate); err != nil {
		return nil, err
	}
	return &t, nil
}
