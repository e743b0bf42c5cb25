// Package service contains the business logic layer.
//
// This file implements the quote intake service: validate the submission,
// mint a quote ID, and dispatch the staff and customer notifications.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/quickmove-ch/intake/internal/domain"
	"github.com/quickmove-ch/intake/internal/email"
	"github.com/quickmove-ch/intake/internal/metrics"
)

// =============================================================================
// Interface Definition
// =============================================================================

// QuoteService defines the interface for quote intake operations.
type QuoteService interface {
	// Submit validates a quote submission and dispatches both notification
	// emails. Returns the validated request (with its quote ID) on success.
	//
	// Returns *domain.ValidationError if the submission fails the intake
	// schema; no emails are attempted in that case.
	// Returns domain.EUNAVAILABLE if validation passed but at least one
	// notification could not be sent. The sends are not transactional: one
	// email may have gone out even when Submit reports failure.
	Submit(ctx context.Context, sub *domain.QuoteSubmission) (*domain.QuoteRequest, error)
}

// =============================================================================
// Implementation
// =============================================================================

// quoteService implements the QuoteService interface.
type quoteService struct {
	mailer email.Service
	logger *slog.Logger
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(mailer email.Service, logger *slog.Logger) QuoteService {
	return &quoteService{
		mailer: mailer,
		logger: logger,
	}
}

// Submit processes one quote request end to end.
//
// The two sends run concurrently; the call returns only after both have
// finished. Ordering between them carries no meaning. Nothing is persisted
// and nothing is retried: a failed submission requires the customer to
// resubmit the form.
func (s *quoteService) Submit(ctx context.Context, sub *domain.QuoteSubmission) (*domain.QuoteRequest, error) {
	if err := sub.Validate(); err != nil {
		metrics.QuotesSubmitted.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	req := sub.Request(domain.NewQuoteID())

	var wg sync.WaitGroup
	var staffErr, customerErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		staffErr = s.mailer.SendStaffNotification(ctx, req)
		metrics.EmailsDispatched.WithLabelValues(metrics.KindStaff, sendStatus(staffErr)).Inc()
	}()
	go func() {
		defer wg.Done()
		customerErr = s.mailer.SendCustomerConfirmation(ctx, req)
		metrics.EmailsDispatched.WithLabelValues(metrics.KindCustomer, sendStatus(customerErr)).Inc()
	}()
	wg.Wait()

	if staffErr != nil || customerErr != nil {
		metrics.QuotesSubmitted.WithLabelValues(metrics.OutcomeDispatchFailed).Inc()
		s.logger.Error("quote notification dispatch failed",
			"quote_id", req.QuoteID,
			"staff_error", staffErr,
			"customer_error", customerErr,
		)
		return nil, domain.Unavailable(
			errors.Join(staffErr, customerErr),
			"quote.submit",
			dispatchFailureMessage(staffErr, customerErr),
		)
	}

	metrics.QuotesSubmitted.WithLabelValues(metrics.OutcomeAccepted).Inc()
	s.logger.Info("quote request accepted",
		"quote_id", req.QuoteID,
		"from", req.FromZip+" "+req.FromCity,
		"to", req.ToZip+" "+req.ToCity,
	)
	return req, nil
}

// dispatchFailureMessage names exactly which notification(s) failed so the
// caller can tell "invalid data" apart from "validated but not notified",
// and partial success is not silently collapsed.
func dispatchFailureMessage(staffErr, customerErr error) string {
	switch {
	case staffErr != nil && customerErr != nil:
		return "Failed to send the quote notifications. Please try again."
	case staffErr != nil:
		return "Your confirmation email was sent, but our team could not be notified. Please try again."
	default:
		return "Our team was notified, but the confirmation email to you failed. We will contact you regardless."
	}
}

func sendStatus(err error) string {
	if err != nil {
		return metrics.StatusFailed
	}
	return metrics.StatusSent
}
