package tenant

import "errors"

var (
	// ErrNoTenantSegment is returned when the path has no segment to read a slug from.
	ErrNoTenantSegment = errors.New("no tenant segment in path")

	// ErrTenantNotFound is returned when no tenant matches the slug.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrInvalidSlug is returned when the first segment cannot be a tenant slug.
	ErrInvalidSlug = errors.New("invalid tenant slug")

	// ErrNoTenantInContext is returned when no tenant is bound to the context.
	ErrNoTenantInContext = errors.New("no tenant in context")
)

// IsNotFound reports whether err should surface as a not-found response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoTenantSegment) ||
		errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrInvalidSlug)
}
