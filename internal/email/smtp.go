package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"path/filepath"
	"strings"
	"time"

	"github.com/quickmove-ch/intake/internal/domain"
)

// =============================================================================
// SMTP Email Service Implementation
// =============================================================================

// SMTPService sends quote notification emails via SMTP.
//
// This implementation works with:
// - Mailhog (development): No authentication required
// - Any standard SMTP relay (production): Uses username/password authentication
//
// Email templates are loaded from the templates directory and rendered
// with Go's html/template package.
type SMTPService struct {
	config     SMTPConfig
	staffEmail string
	siteURL    string
	templates  *template.Template
	logger     *slog.Logger
}

// NewSMTPService creates a new SMTP-based quote notification service.
//
// Parameters:
// - config: SMTP server configuration
// - staffEmail: Fixed recipient for staff notifications
// - siteURL: Public website URL shown in the customer footer
// - templatesDir: Path to email templates directory (e.g., "web/templates/email")
// - logger: Structured logger for error reporting
func NewSMTPService(
	config SMTPConfig,
	staffEmail string,
	siteURL string,
	templatesDir string,
	logger *slog.Logger,
) (*SMTPService, error) {
	if staffEmail == "" {
		return nil, fmt.Errorf("staff email address is required")
	}

	// Set defaults
	if config.From == "" {
		config.From = DefaultFromEmail
	}
	if config.FromName == "" {
		config.FromName = DefaultFromName
	}

	// Load email templates
	pattern := filepath.Join(templatesDir, "*.html")
	templates, err := template.New("email").ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &SMTPService{
		config:     config,
		staffEmail: staffEmail,
		siteURL:    strings.TrimSuffix(siteURL, "/"),
		templates:  templates,
		logger:     logger,
	}, nil
}

// =============================================================================
// Service Interface Implementation
// =============================================================================

// SendStaffNotification sends the full quote breakdown to the staff address.
func (s *SMTPService) SendStaffNotification(ctx context.Context, req *domain.QuoteRequest) error {
	msg, err := s.StaffNotification(req)
	if err != nil {
		return fmt.Errorf("failed to render staff notification: %w", err)
	}
	return s.send(ctx, msg)
}

// SendCustomerConfirmation sends the confirmation to the customer.
func (s *SMTPService) SendCustomerConfirmation(ctx context.Context, req *domain.QuoteRequest) error {
	msg, err := s.CustomerConfirmation(req)
	if err != nil {
		return fmt.Errorf("failed to render customer confirmation: %w", err)
	}
	return s.send(ctx, msg)
}

// =============================================================================
// Document Rendering
// =============================================================================

// StaffNotification renders the staff-facing document: four labeled sections
// covering the move, the property, the requested services and the customer.
func (s *SMTPService) StaffNotification(req *domain.QuoteRequest) (Email, error) {
	htmlBody, err := s.renderTemplate("staff_notification.html", staffTemplateData(req))
	if err != nil {
		return Email{}, err
	}

	textBody := fmt.Sprintf(`New quote request %s

Move: %s, %s %s -> %s %s
Date: %s (%s)
Customer: %s <%s>, %s

See the HTML version for the full breakdown.
`,
		req.QuoteID,
		moveTypeLabel(req.MoveType),
		req.FromZip, req.FromCity, req.ToZip, req.ToCity,
		dateOr(req.Date, "Not specified"), flexibilityLabel(req.Flexibility),
		req.FullName(), req.Email, req.Phone,
	)

	return Email{
		To:       s.staffEmail,
		Subject:  fmt.Sprintf("New Quote Request %s - %s", req.QuoteID, req.FullName()),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// CustomerConfirmation renders the customer-facing document: greeting, quote
// ID, condensed route summary and the fixed "what happens next" block.
func (s *SMTPService) CustomerConfirmation(req *domain.QuoteRequest) (Email, error) {
	htmlBody, err := s.renderTemplate("customer_confirmation.html", customerTemplateData(req, s.siteURL))
	if err != nil {
		return Email{}, err
	}

	textBody := fmt.Sprintf(`Dear %s,

Thank you for choosing QuickMove AG! We have received your relocation quote request.

Your Request ID: %s

Move Details:
- From: %s %s
- To: %s %s
- Date: %s

What happens next?
- Our team will review your request within 24 hours
- We'll contact you via %s with a detailed quote
- You can expect to hear from us soon!

QuickMove AG
Premium Relocation Services Switzerland
%s
`,
		req.FullName(),
		req.QuoteID,
		req.FromZip, req.FromCity, req.ToZip, req.ToCity,
		dateOr(req.Date, "To be confirmed"),
		contactPreferenceLabel(req.ContactPreference),
		s.siteURL,
	)

	return Email{
		To:       req.Email,
		Subject:  fmt.Sprintf("Quote Request Confirmed - %s", req.QuoteID),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// =============================================================================
// Internal Methods
// =============================================================================

// send sends an email via SMTP.
func (s *SMTPService) send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Build the email message
	msg := s.buildMessage(email)

	// Create SMTP address
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	// Create auth if credentials are provided (not needed for Mailhog)
	var auth smtp.Auth
	if s.config.Username != "" && s.config.Password != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	// Send the email
	err := smtp.SendMail(addr, auth, s.config.From, []string{email.To}, msg)
	if err != nil {
		s.logger.Error("failed to send email",
			"to", email.To,
			"subject", email.Subject,
			"error", err,
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent",
		"to", email.To,
		"subject", email.Subject,
	)

	return nil
}

// buildMessage constructs the raw email message with headers.
func (s *SMTPService) buildMessage(email Email) []byte {
	var buf bytes.Buffer

	// From header with display name
	fromHeader := fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)

	// Write headers
	buf.WriteString(fmt.Sprintf("From: %s\r\n", fromHeader))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	buf.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	buf.WriteString("MIME-Version: 1.0\r\n")

	// Create multipart message for HTML + text
	boundary := "===============QUICKMOVE_BOUNDARY==============="
	buf.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary))
	buf.WriteString("\r\n")

	// Plain text part
	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(email.TextBody)
	buf.WriteString("\r\n")

	// HTML part
	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(email.HTMLBody)
	buf.WriteString("\r\n")

	// End boundary
	buf.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return buf.Bytes()
}

// renderTemplate renders an email template with the given data.
func (s *SMTPService) renderTemplate(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// =============================================================================
// Compile-time interface check
// =============================================================================

var _ Service = (*SMTPService)(nil)
