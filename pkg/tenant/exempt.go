package tenant

import "strings"

// ExemptSet holds first path segments that are never treated as tenants,
// such as "admin" or "healthz".
type ExemptSet map[string]struct{}

// NewExemptSet builds a set from the given segments. Leading and trailing
// slashes are ignored, so "admin", "/admin" and "/admin/" are equivalent.
func NewExemptSet(segments ...string) ExemptSet {
	set := make(ExemptSet, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// Contains reports whether segment is exempt. The match is exact.
func (s ExemptSet) Contains(segment string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[segment]
	return ok
}
