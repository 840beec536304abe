// Package product provides HTTP handlers for product-related endpoints.
// It includes handlers for creating, listing, updating, and deleting products.
package product

import (
	"time"

	"catalog-api/internal/domain/entity"
)

// DTO represents the JSON structure for product data transfer.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"name" example:"Mechanical Keyboard"`
	SKU         string    `json:"sku" example:"KB-ALU-87"`
	Description string    `json:"description" example:"87-key aluminium board"`
	PriceCents  int64     `json:"price_cents" example:"12900"`
	CreatedAt   time.Time `json:"created_at" example:"2026-08-01T12:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2026-08-01T12:00:00Z"`
}

func toDTO(p *entity.Product) DTO {
	return DTO{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
