package product

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	"catalog-api/internal/repository"
	prodUC "catalog-api/internal/usecase/product"
)

type UpdateHandler struct{ Svc *prodUC.Service }

// ServeHTTP updates a product.
// @Summary      Update product
// @Description  Updates an existing product. Absent fields are left untouched.
// @Tags         products
// @Accept       json
// @Param        id path int true "Product ID"
// @Param        product body object true "Fields to update"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - product not found"
// @Failure      409 {string} string "Conflict - SKU already exists"
// @Failure      503 {string} string "Storage unavailable"
// @Router       /products/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/products/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name        *string `json:"name"`
		SKU         *string `json:"sku"`
		Description *string `json:"description"`
		PriceCents  *int64  `json:"price_cents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Update(r.Context(), prodUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, prodUC.ErrProductNotFound):
			code = http.StatusNotFound
		case errors.Is(err, prodUC.ErrSKUExists):
			code = http.StatusConflict
		case errors.Is(err, repository.ErrUnavailable):
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
