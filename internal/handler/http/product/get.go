package product

import (
	"errors"
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	"catalog-api/internal/repository"
	prodUC "catalog-api/internal/usecase/product"
)

type GetHandler struct{ Svc *prodUC.Service }

// ServeHTTP fetches a single product.
// @Summary      Get product
// @Description  Returns the product with the given ID
// @Tags         products
// @Produce      json
// @Param        id path int true "Product ID"
// @Success      200 {object} DTO "Product detail"
// @Failure      400 {string} string "Bad request - invalid product ID"
// @Failure      404 {string} string "Not found - product not found"
// @Failure      503 {string} string "Storage unavailable"
// @Failure      500 {string} string "Server error"
// @Router       /products/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/products/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, prodUC.ErrInvalidProductID):
			code = http.StatusBadRequest
		case errors.Is(err, prodUC.ErrProductNotFound):
			code = http.StatusNotFound
		case errors.Is(err, repository.ErrUnavailable):
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(p))
}
