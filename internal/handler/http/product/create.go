package product

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-api/internal/handler/http/respond"
	"catalog-api/internal/repository"
	prodUC "catalog-api/internal/usecase/product"
)

type CreateHandler struct{ Svc *prodUC.Service }

// ServeHTTP creates a product.
// @Summary      Create product
// @Description  Creates a new product in the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product body object true "Product fields"
// @Success      201 {object} DTO "Created product"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      409 {string} string "Conflict - SKU already exists"
// @Failure      503 {string} string "Storage unavailable"
// @Router       /products [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		SKU         string `json:"sku"`
		Description string `json:"description"`
		PriceCents  int64  `json:"price_cents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" || req.SKU == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("name, sku are required"))
		return
	}

	p, err := h.Svc.Create(r.Context(), prodUC.CreateInput{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, prodUC.ErrSKUExists):
			code = http.StatusConflict
		case errors.Is(err, repository.ErrUnavailable):
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(p))
}
