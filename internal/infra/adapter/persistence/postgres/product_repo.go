// Package postgres implements the product repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
)

// Executor is the subset of database/sql used by the repository. It is
// satisfied by *sql.DB and by the circuit-breaker wrapper, so the repository
// does not care whether queries run protected or raw.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type ProductRepo struct {
	db Executor
}

func NewProductRepo(db Executor) repository.ProductRepository {
	return &ProductRepo{db: db}
}

// ListPaginated retrieves a bounded slice of products ordered by ID, which
// is insertion order for a serial primary key.
func (repo *ProductRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	const query = `
SELECT id, name, sku, description, price_cents, created_at, updated_at
FROM products
ORDER BY id
LIMIT $1 OFFSET $2`

	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr("ListPaginated", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*entity.Product, 0, limit)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Description,
			&p.PriceCents, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// Count returns the total number of products in the database.
func (repo *ProductRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM products`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, wrapErr("Count", err)
	}
	return count, nil
}

func (repo *ProductRepo) Get(ctx context.Context, id int64) (*entity.Product, error) {
	const query = `
SELECT id, name, sku, description, price_cents, created_at, updated_at
FROM products
WHERE id = $1
LIMIT 1`
	var p entity.Product
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.SKU, &p.Description,
			&p.PriceCents, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return &p, nil
}

func (repo *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	const query = `
INSERT INTO products (name, sku, description, price_cents, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		product.Name, product.SKU, product.Description,
		product.PriceCents, product.CreatedAt, product.UpdatedAt).
		Scan(&product.ID)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

func (repo *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	const query = `
UPDATE products
SET name = $1, sku = $2, description = $3, price_cents = $4, updated_at = $5
WHERE id = $6`
	if _, err := repo.db.ExecContext(ctx, query,
		product.Name, product.SKU, product.Description,
		product.PriceCents, product.UpdatedAt, product.ID); err != nil {
		return wrapErr("Update", err)
	}
	return nil
}

func (repo *ProductRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return wrapErr("Delete", err)
	}
	return nil
}

func (repo *ProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM products WHERE sku = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, sku).Scan(&exists); err != nil {
		return false, wrapErr("ExistsBySKU", err)
	}
	return exists, nil
}

// wrapErr adds the operation name and normalizes connection-level failures
// to repository.ErrUnavailable so callers can distinguish an unreachable
// store from a query bug. Circuit-breaker rejections arrive already wrapped
// as ErrUnavailable and pass through unchanged.
func wrapErr(op string, err error) error {
	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w: %v", op, repository.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
