// Package repository defines the persistence contracts consumed by the
// usecase layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"
	"errors"

	"catalog-api/internal/domain/entity"
)

// ErrUnavailable indicates that the backing store cannot be reached
// (connection refused, circuit breaker open, pool exhausted). The usecase
// layer never retries it; handlers map it to 503 Service Unavailable.
var ErrUnavailable = errors.New("storage unavailable")

// ProductRepository is the collection accessor for products. Implementations
// must return products in a stable order (insertion order, ascending ID) so
// that offset pagination yields consistent pages.
//
// No atomicity is guaranteed between Count and ListPaginated: a write
// between the two calls may make a single page's metadata momentarily
// inconsistent with its items. This matches offset-pagination semantics.
type ProductRepository interface {
	// Count returns the total number of products, computed at call time.
	// Used for calculating pagination metadata (total pages, etc.).
	Count(ctx context.Context) (int64, error)
	// ListPaginated retrieves a bounded slice of products using LIMIT and
	// OFFSET. It returns fewer than limit products only at the end of the
	// collection, and an empty slice when offset >= Count.
	// Parameters:
	//   - offset: Number of rows to skip (calculated from the page index)
	//   - limit: Maximum number of rows to return
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Product, error)
	// Get returns the product with the given ID, or (nil, nil) when no such
	// product exists.
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	// ExistsBySKU reports whether a product with the given SKU exists.
	// Used to enforce SKU uniqueness before insert.
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
