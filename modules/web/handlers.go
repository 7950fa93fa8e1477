package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/greyhound/greyhound/pkg/logger"
	"github.com/greyhound/greyhound/pkg/tenant"
	"github.com/greyhound/greyhound/svc/ledger"
)

type handlers struct {
	ledger    ledger.Store
	log       *slog.Logger
	languages []language.Tag
	matcher   language.Matcher
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	t := tenant.MustFromContext(r.Context())
	h.render(w, r, http.StatusOK, indexPage(displayName(t), []link{
		{Href: tenant.PathFor(t, "/"), Label: "Início"},
		{Href: tenant.PathFor(t, "/saldo/"), Label: "Saldo"},
	}))
}

type balanceResponse struct {
	Tenant string  `json:"tenant"`
	Saldo  float64 `json:"saldo"`
}

func (h *handlers) balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t := tenant.MustFromContext(ctx)

	sum, err := h.ledger.Balance(ctx, t.ID)
	if err != nil {
		h.log.ErrorContext(ctx, "balance lookup failed", logger.Error(err))
		h.render(w, r, http.StatusInternalServerError, errorPage(http.StatusInternalServerError, "saldo indisponível"))
		return
	}

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(balanceResponse{Tenant: t.Slug, Saldo: sum}); err != nil {
			h.log.ErrorContext(ctx, "encode balance", logger.Error(err))
		}
		return
	}

	p := message.NewPrinter(h.language(r))
	h.render(w, r, http.StatusOK, balancePage(displayName(t), p.Sprintf("%.2f", sum)))
}

// admin is mounted outside tenants and is reachable only while its segment
// is exempt, so tenant.Current reports that no tenant is bound.
func (h *handlers) admin(w http.ResponseWriter, r *http.Request) {
	msg := "nenhum tenant associado"
	if t, err := tenant.Current(r.Context()); err == nil {
		msg = "tenant: " + t.Slug
	}
	h.render(w, r, http.StatusOK, adminPage(msg))
}

func (h *handlers) render(w http.ResponseWriter, r *http.Request, code int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := c.Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "render view", logger.Error(err))
	}
}

func (h *handlers) language(r *http.Request) language.Tag {
	_, i := language.MatchStrings(h.matcher, r.Header.Get("Accept-Language"))
	return h.languages[i]
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func displayName(t *tenant.Tenant) string {
	if t.Name != "" {
		return t.Name
	}
	return t.Slug
}

// ErrorHandler renders tenant resolution failures as HTML pages. Not-found
// kinds become 404, anything else is logged and becomes 500.
func ErrorHandler(log *slog.Logger) tenant.ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		code, msg := http.StatusNotFound, "página não encontrada"
		if !tenant.IsNotFound(err) {
			code, msg = http.StatusInternalServerError, "erro interno"
			log.ErrorContext(r.Context(), "tenant resolution failed", logger.Path(r.URL.Path), logger.Error(err))
		}
		h := &handlers{log: log}
		h.render(w, r, code, errorPage(code, msg))
	}
}
