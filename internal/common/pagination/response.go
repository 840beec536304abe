package pagination

// Response is a generic paginated response wrapper. T is the type of the
// items (e.g. ProductDTO). The metadata fields are flattened into the
// response body, so a serialized Response carries items, page, size,
// total_elements and total_pages.
//
// Example usage:
//
//	response := pagination.NewResponse(products, metadata)
//	// response is of type pagination.Response[ProductDTO]
type Response[T any] struct {
	Items []T `json:"items"` // Items for the current page (length <= size)
	Metadata
}

// NewResponse creates a new paginated response with items and metadata.
func NewResponse[T any](items []T, metadata Metadata) Response[T] {
	return Response[T]{
		Items:    items,
		Metadata: metadata,
	}
}
