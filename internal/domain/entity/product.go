// Package entity defines the core domain entities and validation logic for
// the application. It contains the fundamental business objects such as
// Product, along with their validation rules and domain-specific errors.
package entity

import "time"

// Product represents a catalog product entity in the system.
// Prices are stored in cents to avoid floating point arithmetic.
type Product struct {
	ID          int64
	Name        string
	SKU         string
	Description string
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
