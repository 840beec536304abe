package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Pre-compiled at initialization so normalization stays cheap on the hot path.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/products/\d+$`), Template: "/products/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs (e.g., /products/123) become a
// template (/products/:id); static paths pass through unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/products/123?page=1")  // "/products/:id"
//	NormalizePath("/products/123/")        // "/products/:id"
//	NormalizePath("/health")               // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
