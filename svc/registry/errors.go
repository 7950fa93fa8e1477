package registry

import "errors"

var (
	ErrDuplicateSlug   = errors.New("tenant slug already registered")
	ErrInvalidFixtures = errors.New("invalid tenant fixtures")
	ErrCacheEncode     = errors.New("failed to encode cached tenant")
)
