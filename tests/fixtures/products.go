// Package fixtures provides reusable test data generators for integration tests.
// This package eliminates test data duplication and ensures consistent test
// content across different test suites.
package fixtures

import (
	"fmt"
	"time"

	"catalog-api/internal/domain/entity"
)

// ProductOptions configures the generated product set.
type ProductOptions struct {
	// Count is the number of products to generate.
	Count int

	// BasePriceCents is the price of the first product; subsequent products
	// increase by 100 cents each so ordering is observable in tests.
	BasePriceCents int64

	// SKUPrefix is prepended to the zero-padded index (default "SKU").
	SKUPrefix string
}

// GenerateProducts generates a deterministic, insertion-ordered product set.
// IDs are left zero so repositories can assign them.
//
// Example:
//
//	products := fixtures.GenerateProducts(fixtures.ProductOptions{Count: 25})
func GenerateProducts(opts ProductOptions) []*entity.Product {
	if opts.SKUPrefix == "" {
		opts.SKUPrefix = "SKU"
	}
	if opts.BasePriceCents == 0 {
		opts.BasePriceCents = 1000
	}

	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	products := make([]*entity.Product, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		products = append(products, &entity.Product{
			Name:        fmt.Sprintf("Product %02d", i),
			SKU:         fmt.Sprintf("%s-%04d", opts.SKUPrefix, i),
			Description: fmt.Sprintf("Catalog item number %d", i),
			PriceCents:  opts.BasePriceCents + int64(i)*100,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return products
}

// GenerateProduct generates a single valid product with the given index.
func GenerateProduct(i int) *entity.Product {
	return GenerateProducts(ProductOptions{Count: i + 1})[i]
}
