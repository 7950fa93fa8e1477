package tenant

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// contextKey prevents collisions with other packages using context values
type contextKey struct{}

// scope is the tenant slot of a single request. The middleware installs a
// fresh scope for every request and empties it once the request is done, so
// a context that outlives its request never reports a stale tenant.
type scope struct {
	tenant atomic.Pointer[Tenant]
}

func (s *scope) set(t *Tenant) { s.tenant.Store(t) }
func (s *scope) clear()        { s.tenant.Store(nil) }

func newScope(ctx context.Context) (context.Context, *scope) {
	s := &scope{}
	return context.WithValue(ctx, contextKey{}, s), s
}

func scopeFrom(ctx context.Context) (*scope, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(contextKey{}).(*scope)
	return s, ok
}

// WithTenant returns a child context with t bound as the current tenant.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	ctx, s := newScope(ctx)
	s.set(t)
	return ctx
}

// FromContext returns the tenant bound to ctx.
// Returns nil, false if there is none or it has been cleared.
func FromContext(ctx context.Context) (*Tenant, bool) {
	s, ok := scopeFrom(ctx)
	if !ok {
		return nil, false
	}
	t := s.tenant.Load()
	return t, t != nil
}

// Current returns the tenant bound to ctx or ErrNoTenantInContext.
func Current(ctx context.Context) (*Tenant, error) {
	t, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoTenantInContext
	}
	return t, nil
}

// MustFromContext panics if no tenant is bound. Use only in handlers mounted
// behind RequireTenant.
func MustFromContext(ctx context.Context) *Tenant {
	t, err := Current(ctx)
	if err != nil {
		panic("tenant: " + err.Error())
	}
	return t
}

// SlugFromContext returns the slug of the current tenant, or "".
func SlugFromContext(ctx context.Context) string {
	if t, ok := FromContext(ctx); ok {
		return t.Slug
	}
	return ""
}

// Clear unbinds the current tenant of ctx. Every context derived from the
// same request sees the change.
func Clear(ctx context.Context) {
	if s, ok := scopeFrom(ctx); ok {
		s.clear()
	}
}

// LoggerExtractor returns a function that enriches log records with the tenant slug
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if slug := SlugFromContext(ctx); slug != "" {
			return slog.String("tenant", slug), true
		}
		return slog.Attr{}, false
	}
}
