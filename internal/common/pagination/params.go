package pagination

import (
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page int // 0-based page index
	Size int // Items per page
}

// ParseQueryParams parses pagination parameters from the HTTP request query
// string. Missing parameters fall back to the configured defaults.
//
// Query parameters:
//   - page: Page index (must be a non-negative integer)
//   - size: Items per page (must be between 1 and config.MaxSize)
//
// Returns an error wrapping ErrInvalidPageRequest if parameters are present
// but invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page: config.DefaultPage,
		Size: config.DefaultSize,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return params, invalidParam("page must be a non-negative integer")
		}
		params.Page = page
	}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > config.MaxSize {
			return params, invalidParam("size must be between 1 and %d", config.MaxSize)
		}
		params.Size = size
	}

	return params, nil
}
