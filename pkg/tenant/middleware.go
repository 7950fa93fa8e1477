package tenant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/greyhound/greyhound/pkg/logger"
)

// Middleware resolves the tenant named by the first path segment and binds it
// to the request context.
type Middleware struct {
	registry Registry
	cfg      *config
}

// New creates a Middleware backed by registry.
func New(registry Registry, opts ...Option) *Middleware {
	if registry == nil {
		panic("tenant: nil registry")
	}

	cfg := &config{
		cache:        NoOpCache{},
		cacheTTL:     5 * time.Minute,
		errorHandler: DefaultErrorHandler,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Middleware{registry: registry, cfg: cfg}
}

// Handler wraps next with tenant resolution.
//
// Requests without a tenant segment or with an unknown slug are rejected
// through the error handler and never reach next. Exempt requests reach next
// unchanged and without a tenant. Resolved requests reach next with the slug
// stripped from URL.Path and the tenant bound to the context until next
// returns.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A fresh scope per request shadows whatever an outer context carried.
		ctx, s := newScope(r.Context())
		defer s.clear()

		res := m.Resolve(ctx, r.URL.Path)
		switch res.State {
		case StateExempt:
			next.ServeHTTP(w, r.WithContext(ctx))

		case StateResolved:
			if res.Rest == "" && m.cfg.appendSlash && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
				target := *r.URL
				target.Path += "/"
				if target.RawPath != "" {
					target.RawPath += "/"
				}
				http.Redirect(w, r, target.RequestURI(), http.StatusMovedPermanently)
				return
			}

			s.set(res.Tenant)
			next.ServeHTTP(w, stripSlug(r.WithContext(ctx), res))

		default:
			m.cfg.logger.DebugContext(ctx, "tenant resolution rejected",
				logger.Path(r.URL.Path),
				slog.String("slug", res.Slug),
				logger.Error(res.Err),
			)
			m.cfg.errorHandler(w, r.WithContext(ctx), res.Err)
		}
	})
}

// Resolve runs tenant resolution for path without touching any request.
func (m *Middleware) Resolve(ctx context.Context, path string) Resolution {
	slug, rest, err := SplitPath(path)
	if err != nil {
		return Resolution{State: StateRejected, Err: err}
	}

	if m.exempt(ctx).Contains(slug) {
		return Resolution{State: StateExempt, Slug: slug, Rest: path}
	}

	t, err := m.lookup(ctx, slug)
	if err != nil {
		return Resolution{State: StateRejected, Slug: slug, Err: err}
	}

	return Resolution{State: StateResolved, Slug: slug, Rest: rest, Tenant: t}
}

// GetTenantFromURL splits path into the tenant slug and the remainder.
// It performs neither the exemption check nor a registry lookup.
// A path without a segment yields ErrNoTenantSegment, for which IsNotFound
// reports true.
func (m *Middleware) GetTenantFromURL(path string) (slug, rest string, err error) {
	return SplitPath(path)
}

// CheckTenant looks slug up in the registry and binds the tenant to the
// returned context. If ctx already belongs to a request handled by this
// middleware the tenant is bound to that request as well.
// Unknown slugs yield ErrTenantNotFound.
func (m *Middleware) CheckTenant(ctx context.Context, slug string) (context.Context, error) {
	t, err := m.lookup(ctx, slug)
	if err != nil {
		return ctx, err
	}
	if s, ok := scopeFrom(ctx); ok {
		s.set(t)
		return ctx, nil
	}
	return WithTenant(ctx, t), nil
}

func (m *Middleware) exempt(ctx context.Context) ExemptSet {
	if m.cfg.exemptFunc != nil {
		return NewExemptSet(m.cfg.exemptFunc(ctx)...)
	}
	return m.cfg.exempt
}

func (m *Middleware) lookup(ctx context.Context, slug string) (*Tenant, error) {
	if !ValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	if t, ok := m.cfg.cache.Get(ctx, slug); ok {
		return t, nil
	}

	t, err := m.registry.Lookup(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tenant lookup %q: %w", slug, err)
	}
	if t == nil {
		return nil, ErrTenantNotFound
	}

	if err := m.cfg.cache.Set(ctx, slug, t, m.cfg.cacheTTL); err != nil {
		m.cfg.logger.WarnContext(ctx, "failed to cache tenant",
			logger.Tenant(slug),
			logger.Error(err),
		)
	}
	return t, nil
}

// stripSlug returns a shallow copy of r whose URL no longer carries the
// tenant segment.
func stripSlug(r *http.Request, res Resolution) *http.Request {
	u := *r.URL
	u.Path = res.Rest
	u.RawPath = stripRawSegment(u.RawPath, res.Rest)
	r.URL = &u
	return r
}

// stripRawSegment drops the first segment of the escaped path raw. The result
// is kept only if it still decodes to rest; otherwise "" makes net/url derive
// the escaped form from Path.
func stripRawSegment(raw, rest string) string {
	if raw == "" {
		return ""
	}
	_, after, found := strings.Cut(strings.TrimPrefix(raw, "/"), "/")
	if !found {
		return ""
	}
	after = "/" + after
	if decoded, err := url.PathUnescape(after); err != nil || decoded != rest {
		return ""
	}
	return after
}

// RequireTenant creates middleware that rejects requests without a tenant in
// context with ErrNoTenantInContext.
func RequireTenant(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = DefaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoTenantInContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
