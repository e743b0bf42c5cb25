package handler

import (
	"log/slog"
	"net/http"

	"github.com/quickmove-ch/intake/internal/i18n"
)

// I18nHandler serves the wizard translation bundles.
type I18nHandler struct {
	logger *slog.Logger
}

// NewI18nHandler creates a new I18nHandler.
func NewI18nHandler(logger *slog.Logger) *I18nHandler {
	return &I18nHandler{logger: logger}
}

// RegisterRoutes registers i18n routes on the provided mux.
func (h *I18nHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/i18n", h.HandleNegotiate)
	mux.HandleFunc("GET /api/i18n/{lang}", h.HandleBundle)
}

// HandleBundle serves the translation bundle for an explicit language.
func (h *I18nHandler) HandleBundle(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Language(r.PathValue("lang"))
	tr := i18n.Lookup(lang)
	if tr == nil {
		NotFoundResponse(w, r, h.logger)
		return
	}
	h.writeBundle(w, lang, tr)
}

// HandleNegotiate picks the best supported language from the
// Accept-Language header and serves that bundle.
func (h *I18nHandler) HandleNegotiate(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Match(r.Header.Get("Accept-Language"))
	h.writeBundle(w, lang, i18n.Lookup(lang))
}

func (h *I18nHandler) writeBundle(w http.ResponseWriter, lang i18n.Language, tr *i18n.Translation) {
	w.Header().Set("Content-Language", string(lang))
	writeJSON(w, http.StatusOK, tr)
}
