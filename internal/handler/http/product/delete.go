package product

import (
	"errors"
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	"catalog-api/internal/repository"
	prodUC "catalog-api/internal/usecase/product"
)

type DeleteHandler struct{ Svc *prodUC.Service }

// ServeHTTP deletes a product.
// @Summary      Delete product
// @Description  Removes a product from the catalog
// @Tags         products
// @Param        id path int true "Product ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      503 {string} string "Storage unavailable"
// @Failure      500 {string} string "Server error"
// @Router       /products/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/products/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, prodUC.ErrInvalidProductID):
			code = http.StatusBadRequest
		case errors.Is(err, repository.ErrUnavailable):
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
