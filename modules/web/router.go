package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/greyhound/greyhound/pkg/requestid"
	"github.com/greyhound/greyhound/pkg/tenant"
	"github.com/greyhound/greyhound/svc/ledger"
)

// Options configures the application handler. Tenants and Ledger are required.
type Options struct {
	Tenants *tenant.Middleware
	Ledger  ledger.Store
	Log     *slog.Logger

	// Health answers /healthz/. The segment must be exempt to be reachable.
	Health http.Handler

	// Languages lists the locales used to format amounts, preferred first.
	// Defaults to Brazilian Portuguese and English.
	Languages []language.Tag

	// ErrorHandler answers requests that reached a view without a tenant.
	ErrorHandler tenant.ErrorHandler
}

// Handler assembles the full request pipeline: request id, panic recovery,
// tenant resolution, access logging and the views.
func Handler(opts Options) http.Handler {
	if opts.Tenants == nil || opts.Ledger == nil {
		panic("web: Tenants and Ledger are required")
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if len(opts.Languages) == 0 {
		opts.Languages = []language.Tag{language.BrazilianPortuguese, language.English}
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = ErrorHandler(opts.Log)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer, opts.Tenants.Handler, accessLog(opts.Log))

	if opts.Health != nil {
		r.Group(func(r chi.Router) {
			r.Use(outsideTenant(opts.Log))
			r.Handle("/healthz", opts.Health)
			r.Handle("/healthz/", opts.Health)
		})
	}
	r.Mount("/", Router(opts))
	return r
}

// Router serves the views with paths relative to the tenant segment.
func Router(opts Options) chi.Router {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	h := &handlers{
		ledger:    opts.Ledger,
		log:       opts.Log,
		languages: opts.Languages,
		matcher:   language.NewMatcher(opts.Languages),
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(outsideTenant(opts.Log))
		r.Get("/admin/", h.admin)
		r.Get("/admin", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/admin/", http.StatusMovedPermanently)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(tenant.RequireTenant(opts.ErrorHandler))
		r.Get("/", h.index)
		r.Get("/saldo/", h.balance)
	})
	return r
}

// outsideTenant answers 404 when a tenant is bound, so routes served only for
// exempt segments cannot be reached below a tenant prefix.
func outsideTenant(log *slog.Logger) func(http.Handler) http.Handler {
	h := &handlers{log: log}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := tenant.FromContext(r.Context()); ok {
				h.render(w, r, http.StatusNotFound, errorPage(http.StatusNotFound, "página não encontrada"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
