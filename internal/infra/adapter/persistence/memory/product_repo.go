// Package memory implements the product repository on an in-memory slice.
// It is the reference accessor implementation: insertion-ordered, safe for
// concurrent use, and handy for tests and local runs without PostgreSQL.
package memory

import (
	"context"
	"sync"

	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
)

type ProductRepo struct {
	mu       sync.RWMutex
	products []*entity.Product // insertion order
	nextID   int64
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{nextID: 1}
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Count returns the total number of products at call time.
func (repo *ProductRepo) Count(_ context.Context) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return int64(len(repo.products)), nil
}

// ListPaginated returns a copy of the products in [offset, offset+limit).
// An offset at or beyond the end of the collection yields an empty slice.
// Returned entities are copies, so callers cannot mutate stored state.
func (repo *ProductRepo) ListPaginated(_ context.Context, offset, limit int) ([]*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if offset < 0 || offset >= len(repo.products) {
		return []*entity.Product{}, nil
	}
	end := offset + limit
	if end > len(repo.products) {
		end = len(repo.products)
	}

	page := make([]*entity.Product, 0, end-offset)
	for _, p := range repo.products[offset:end] {
		cp := *p
		page = append(page, &cp)
	}
	return page, nil
}

func (repo *ProductRepo) Get(_ context.Context, id int64) (*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, p := range repo.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (repo *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	product.ID = repo.nextID
	repo.nextID++

	cp := *product
	repo.products = append(repo.products, &cp)
	return nil
}

// Update replaces the stored product with the same ID. Missing products are
// a no-op, matching the SQL implementation.
func (repo *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, p := range repo.products {
		if p.ID == product.ID {
			cp := *product
			repo.products[i] = &cp
			return nil
		}
	}
	return nil
}

func (repo *ProductRepo) Delete(_ context.Context, id int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, p := range repo.products {
		if p.ID == id {
			repo.products = append(repo.products[:i], repo.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (repo *ProductRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, p := range repo.products {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}
