package tenant

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// ErrorHandler writes the response for a rejected request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type config struct {
	cache        Cache
	cacheTTL     time.Duration
	errorHandler ErrorHandler
	exempt       ExemptSet
	exemptFunc   func(ctx context.Context) []string
	appendSlash  bool
	logger       *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithCache sets the cache used in front of the registry.
func WithCache(c Cache) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.cache = c
		}
	}
}

// WithCacheTTL sets how long looked up tenants are cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(cfg *config) {
		cfg.cacheTTL = ttl
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.errorHandler = h
		}
	}
}

// WithExempt sets the first path segments that skip tenant resolution.
func WithExempt(segments ...string) Option {
	return func(cfg *config) {
		cfg.exempt = NewExemptSet(segments...)
	}
}

// WithExemptFunc makes the middleware read the exempt segments on every
// request, e.g. from settings that can change at runtime.
// It takes precedence over WithExempt.
func WithExemptFunc(fn func(ctx context.Context) []string) Option {
	return func(cfg *config) {
		cfg.exemptFunc = fn
	}
}

// WithAppendSlash redirects GET and HEAD requests addressed to a bare tenant
// ("/acme") to the same path with a trailing slash ("/acme/").
func WithAppendSlash(enabled bool) Option {
	return func(cfg *config) {
		cfg.appendSlash = enabled
	}
}

// WithLogger sets the logger for resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// DefaultErrorHandler maps every not-found kind to 404 and anything else to 500.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	if IsNotFound(err) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
