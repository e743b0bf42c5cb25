// Package handler contains the HTTP handlers for the quote intake API.
//
// Routes:
//   - POST /api/quote      -> QuoteHandler.HandleSubmitQuote
//   - GET  /api/i18n       -> I18nHandler.HandleNegotiate
//   - GET  /api/i18n/{lang} -> I18nHandler.HandleBundle
//
// All routes are PUBLIC. The quote form is the public face of the site,
// so no auth middleware applies here.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/quickmove-ch/intake/internal/domain"
	"github.com/quickmove-ch/intake/internal/service"
)

// maxQuoteBodyBytes caps the request body for quote submissions. A full
// quote payload is well under 8KB.
const maxQuoteBodyBytes = 64 << 10

// QuoteHandler handles quote submission requests.
type QuoteHandler struct {
	quotes service.QuoteService
	logger *slog.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quotes service.QuoteService, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		logger: logger,
	}
}

// RegisterRoutes registers quote routes on the provided mux.
func (h *QuoteHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/quote", h.HandleSubmitQuote)
}

// HandleSubmitQuote processes a quote form submission. Each call is a
// fresh quote: repeated submissions of identical payloads produce
// distinct quote IDs and distinct email pairs.
func (h *QuoteHandler) HandleSubmitQuote(w http.ResponseWriter, r *http.Request) {
	var sub domain.QuoteSubmission
	body := io.LimitReader(r.Body, maxQuoteBodyBytes)
	if err := json.NewDecoder(body).Decode(&sub); err != nil {
		h.logger.Info("malformed quote payload", "error", err, "path", r.URL.Path)
		ErrorResponse(w, r, h.logger, domain.Invalid("quote.decode", "Invalid request body"))
		return
	}

	req, err := h.quotes.Submit(r.Context(), &sub)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			ValidationErrorResponse(w, r, h.logger, ve)
			return
		}
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		QuoteID: req.QuoteID,
		Message: "Quote request submitted successfully",
	})
}
