// Package product provides use cases for managing catalog products.
// It implements business logic for creating, updating, deleting and querying
// products, including validation and paginated listing.
package product

import "errors"

var (
	// ErrInvalidProductID indicates that the provided product ID is not positive.
	ErrInvalidProductID = errors.New("invalid product id")

	// ErrProductNotFound indicates that the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrSKUExists indicates that a product with the same SKU already exists.
	ErrSKUExists = errors.New("sku already exists")
)
