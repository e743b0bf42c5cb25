// Package email renders and sends the two notification emails produced for
// every accepted quote request.
//
// This package defines a Service interface with an SMTP implementation
// (Mailhog in development, any standard relay in production). The two
// documents are rendered from HTML templates with Go's html/template package.
package email

import (
	"context"

	"github.com/quickmove-ch/intake/internal/domain"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Service defines the interface for sending quote notification emails.
//
// Both sends belong to one logical "notify" operation per accepted quote:
// a staff notification to the configured intake address and a confirmation
// to the customer. The operation is not transactional; callers decide how to
// report partial failure.
//
// All methods are context-aware for timeout and cancellation support.
type Service interface {
	// SendStaffNotification sends the full quote breakdown to the staff
	// intake address.
	SendStaffNotification(ctx context.Context, req *domain.QuoteRequest) error

	// SendCustomerConfirmation sends the confirmation (quote ID, route
	// summary, next steps) to the customer's submitted address.
	SendCustomerConfirmation(ctx context.Context, req *domain.QuoteRequest) error
}

// =============================================================================
// Email Data Types
// =============================================================================

// Email represents a single email message.
type Email struct {
	To       string // Recipient email address
	Subject  string // Email subject line
	HTMLBody string // HTML content of the email
	TextBody string // Plain text fallback content
}

// =============================================================================
// Configuration Types
// =============================================================================

// SMTPConfig holds SMTP server configuration.
type SMTPConfig struct {
	Host     string // SMTP server hostname (e.g., "localhost" for Mailhog)
	Port     int    // SMTP server port (e.g., 1025 for Mailhog)
	Username string // SMTP authentication username (empty for Mailhog)
	Password string // SMTP authentication password (empty for Mailhog)
	From     string // Sender email address for both documents
	FromName string // Sender display name
}

// =============================================================================
// Common Constants
// =============================================================================

const (
	// DefaultFromEmail is the default sender address for quote emails.
	DefaultFromEmail = "no-reply@quickmove.ch"

	// DefaultFromName is the default sender display name.
	DefaultFromName = "QuickMove Quote System"
)
