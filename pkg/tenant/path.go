package tenant

import (
	"regexp"
	"strings"
)

// MaxSlugLength keeps slugs usable as DNS labels and cache keys.
const MaxSlugLength = 63

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// SplitPath splits a request path into the tenant slug and the remainder.
//
//	/acme/     -> "acme", "/"
//	/acme      -> "acme", ""
//	/acme/x/   -> "acme", "/x/"
//	/acme/x    -> "acme", "/x"
//
// The empty path and "/" yield ErrNoTenantSegment.
func SplitPath(path string) (slug, rest string, err error) {
	p := strings.TrimPrefix(path, "/")
	if p == "" {
		return "", "", ErrNoTenantSegment
	}

	i := strings.IndexByte(p, '/')
	if i < 0 {
		return p, "", nil
	}
	if i == 0 {
		// "//x": the first segment is empty
		return "", "", ErrNoTenantSegment
	}
	return p[:i], p[i:], nil
}

// ValidSlug reports whether s is acceptable as a tenant slug.
func ValidSlug(s string) bool {
	return len(s) > 0 && len(s) <= MaxSlugLength && slugPattern.MatchString(s)
}
