package product

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"catalog-api/internal/common/pagination"
	"catalog-api/internal/handler/http/requestid"
	"catalog-api/internal/handler/http/respond"
	"catalog-api/internal/observability/logging"
	"catalog-api/internal/repository"
	prodUC "catalog-api/internal/usecase/product"
)

type ListHandler struct {
	Svc           *prodUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists products page by page.
// @Summary      List products (paginated)
// @Description  Returns products in insertion order, one page at a time. Pages are zero-based; a page beyond the end returns an empty item list with intact metadata.
// @Tags         products
// @Produce      json
// @Param        page  query  int  false  "Page index (0-based)" default(0) minimum(0)
// @Param        size  query  int  false  "Items per page" default(10) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[DTO] "Paginated product list"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      503 {string} string "Storage unavailable"
// @Failure      500 {string} string "Server error"
// @Router       /products [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	pagination.LogRequest(logger, reqID, params)

	result, err := h.Svc.ListPaginated(ctx, params)
	if err != nil {
		pagination.LogError(logger, reqID, params, err, "storage")
		pagination.RecordError("storage")

		code := http.StatusInternalServerError
		if errors.Is(err, repository.ErrUnavailable) {
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, toDTO(item))
	}

	response := pagination.NewResponse(dtos, result.Pagination)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.TotalElements)

	pagination.LogResponse(logger, reqID, params, len(dtos), duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, response)
}
