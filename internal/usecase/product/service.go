package product

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/common/pagination"
	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new product.
type CreateInput struct {
	Name        string
	SKU         string
	Description string
	PriceCents  int64
}

// UpdateInput represents the input parameters for updating an existing
// product. Fields with nil values will not be updated.
type UpdateInput struct {
	ID          int64
	Name        *string
	SKU         *string
	Description *string
	PriceCents  *int64
}

// Service provides product management use cases.
// It handles business logic for product operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.ProductRepository
}

// PaginatedResult represents the result of a paginated query.
// It contains both the items and pagination metadata, is built fresh per
// request and is never mutated after construction.
type PaginatedResult struct {
	Items      []*entity.Product
	Pagination pagination.Metadata
}

// ListPaginated retrieves one page of products.
//
// The total count and the page slice are two separate repository calls with
// no atomicity between them; a concurrent write may leave a single
// response's metadata momentarily out of step with its items. Requesting a
// page beyond the end of the collection is not an error: it yields an empty
// item list with metadata that still reflects the full collection.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Size)
	items, err := s.Repo.ListPaginated(ctx, offset, params.Size)
	if err != nil {
		return nil, fmt.Errorf("list products paginated: %w", err)
	}

	return &PaginatedResult{
		Items:      items,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// Get retrieves a single product by its ID.
// Returns ErrInvalidProductID if the ID is not positive.
// Returns ErrProductNotFound if the product does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}

	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Create creates a new product with the provided input.
// It validates all fields and enforces SKU uniqueness.
// Returns a ValidationError if any input field is invalid and ErrSKUExists
// when the SKU is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Product, error) {
	if err := entity.ValidateName(in.Name); err != nil {
		return nil, err
	}
	if err := entity.ValidateSKU(in.SKU); err != nil {
		return nil, err
	}
	if err := entity.ValidatePrice(in.PriceCents); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsBySKU(ctx, in.SKU)
	if err != nil {
		return nil, fmt.Errorf("check sku: %w", err)
	}
	if exists {
		return nil, ErrSKUExists
	}

	now := time.Now()
	p := &entity.Product{
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update modifies an existing product with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrInvalidProductID if the ID is not positive.
// Returns ErrProductNotFound if the product does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidProductID
	}

	p, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return ErrProductNotFound
	}

	if in.Name != nil {
		if err := entity.ValidateName(*in.Name); err != nil {
			return err
		}
		p.Name = *in.Name
	}
	if in.SKU != nil {
		if err := entity.ValidateSKU(*in.SKU); err != nil {
			return err
		}
		if *in.SKU != p.SKU {
			exists, err := s.Repo.ExistsBySKU(ctx, *in.SKU)
			if err != nil {
				return fmt.Errorf("check sku: %w", err)
			}
			if exists {
				return ErrSKUExists
			}
		}
		p.SKU = *in.SKU
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PriceCents != nil {
		if err := entity.ValidatePrice(*in.PriceCents); err != nil {
			return err
		}
		p.PriceCents = *in.PriceCents
	}
	p.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by its ID.
// Returns ErrInvalidProductID if the ID is not positive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidProductID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
