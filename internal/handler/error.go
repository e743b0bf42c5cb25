package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/quickmove-ch/intake/internal/domain"
)

// APIResponse is the wire shape shared by every quote API reply. The
// client only branches on Success and shows Message verbatim, so error
// replies carry the same envelope as successful ones.
type APIResponse struct {
	Success bool   `json:"success"`
	QuoteID string `json:"quoteId,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse writes an error reply to the client, mapping domain
// error codes to HTTP status codes.
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		ValidationErrorResponse(w, r, logger, ve)
		return
	}

	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	op := domain.ErrorOp(err)
	status := ErrorCodeToHTTPStatus(code)

	logError(logger, r, err, code, op, status)

	writeJSON(w, status, APIResponse{Success: false, Message: message})
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.EUNAVAILABLE:
		return http.StatusBadGateway // 502
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// ValidationErrorResponse writes field-level validation errors as a
// single 400 reply. The per-field messages are folded into Message,
// sorted by field name so the reply is stable.
func ValidationErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, ve *domain.ValidationError) {
	logger.Info("validation error",
		"op", ve.Op,
		"field_count", len(ve.Fields),
		"path", r.URL.Path,
	)

	writeJSON(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Message: validationMessage(ve),
	})
}

// NotFoundResponse is a convenience wrapper for 404 errors.
func NotFoundResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	err := domain.Errorf(domain.ENOTFOUND, "", "The requested resource was not found")
	ErrorResponse(w, r, logger, err)
}

// InternalErrorResponse logs the error and returns a generic 500 reply.
// The underlying error details are hidden from the client.
func InternalErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	wrappedErr := domain.Internal(err, "", "An unexpected error occurred")
	ErrorResponse(w, r, logger, wrappedErr)
}

func validationMessage(ve *domain.ValidationError) string {
	fields := make([]string, 0, len(ve.Fields))
	for field := range ve.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+ve.Fields[field])
	}
	return "Invalid quote data: " + strings.Join(parts, "; ")
}

// logError logs the error with a level appropriate for the status code.
// 5xx replies are server-side failures, 4xx are expected client errors.
func logError(logger *slog.Logger, r *http.Request, err error, code, op string, status int) {
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	}
	if op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= 500 {
		logger.Error("server error", attrs...)
	} else if status >= 400 {
		logger.Info("client error", attrs...)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
