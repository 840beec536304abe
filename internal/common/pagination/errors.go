package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidPageRequest is the sentinel error for malformed or out-of-bound
// page/size parameters. Callers match it with errors.Is and map it to a
// client error at the HTTP boundary.
var ErrInvalidPageRequest = errors.New("invalid page request")

// invalidParam wraps ErrInvalidPageRequest with the offending parameter
// and the constraint it violated.
func invalidParam(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPageRequest, fmt.Sprintf(format, args...))
}
