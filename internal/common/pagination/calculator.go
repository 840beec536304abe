package pagination

import "math"

// CalculateOffset calculates the database OFFSET value based on page index
// and size. Page indexes are 0-based, so page 0 has offset 0.
//
// Formula: offset = page * size
//
// The product is capped at MaxInt so an absurdly large (but parseable) page
// index cannot wrap into a negative offset; a capped offset lands past any
// real collection and yields an empty page.
//
// Examples:
//   - Page 0, Size 10 -> Offset 0
//   - Page 1, Size 10 -> Offset 10
//   - Page 2, Size 25 -> Offset 50
func CalculateOffset(page, size int) int {
	if page > 0 && size > 0 && page > math.MaxInt/size {
		return math.MaxInt
	}
	return page * size
}

// CalculateTotalPages calculates the total number of pages based on total
// elements and page size. Uses ceiling division so a partial last page
// still counts.
//
// An empty collection has zero pages: totalPages = 0 iff total = 0.
//
// Examples:
//   - Total 0, Size 10 -> 0 pages
//   - Total 1, Size 10 -> 1 page
//   - Total 10, Size 10 -> 1 page
//   - Total 25, Size 10 -> 3 pages
func CalculateTotalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	// Ceiling division: (total + size - 1) / size
	return int((total + int64(size) - 1) / int64(size))
}
