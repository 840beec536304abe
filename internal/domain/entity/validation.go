package entity

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// maxNameLength bounds product names; anything longer is almost
	// certainly malformed input.
	maxNameLength = 255

	// maxSKULength matches the column width in the products table.
	maxSKULength = 64
)

// ValidateName checks that a product name is present and within bounds.
// Returns a ValidationError describing the first violation found.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(name) > maxNameLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must not exceed %d characters", maxNameLength),
		}
	}
	return nil
}

// ValidateSKU checks that a SKU is present, within bounds, and consists of
// uppercase letters, digits and hyphens only.
func ValidateSKU(sku string) error {
	if sku == "" {
		return &ValidationError{Field: "sku", Message: "is required"}
	}
	if len(sku) > maxSKULength {
		return &ValidationError{
			Field:   "sku",
			Message: fmt.Sprintf("must not exceed %d characters", maxSKULength),
		}
	}
	for _, r := range sku {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) && r != '-' {
			return &ValidationError{
				Field:   "sku",
				Message: "must contain only uppercase letters, digits and hyphens",
			}
		}
	}
	return nil
}

// ValidatePrice checks that a price in cents is non-negative.
func ValidatePrice(priceCents int64) error {
	if priceCents < 0 {
		return &ValidationError{Field: "price_cents", Message: "must not be negative"}
	}
	return nil
}
