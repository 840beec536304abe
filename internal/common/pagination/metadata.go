package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Page          int   `json:"page"`           // Current page index (0-based)
	Size          int   `json:"size"`           // Items per page
	TotalElements int64 `json:"total_elements"` // Total number of items across all pages
	TotalPages    int   `json:"total_pages"`    // Calculated total number of pages
}

// NewMetadata builds pagination metadata for the given params and total
// element count.
func NewMetadata(params Params, total int64) Metadata {
	return Metadata{
		Page:          params.Page,
		Size:          params.Size,
		TotalElements: total,
		TotalPages:    CalculateTotalPages(total, params.Size),
	}
}
