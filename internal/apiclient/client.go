// Package apiclient is the HTTP transport behind the quote wizard: it posts
// the completed draft to the intake endpoint and decodes the acknowledgement.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quickmove-ch/intake/internal/domain"
	"github.com/quickmove-ch/intake/internal/wizard"
)

// DefaultTimeout bounds one submission round trip.
const DefaultTimeout = 30 * time.Second

// Client submits quote requests over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client for the given base URL (e.g. "https://www.quickmove.ch").
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  httpClient,
	}
}

// quoteResponse mirrors the intake endpoint's JSON body for both outcomes.
type quoteResponse struct {
	Success bool   `json:"success"`
	QuoteID string `json:"quoteId"`
	Message string `json:"message"`
}

// SubmitQuote posts one quote submission and returns the server's receipt.
//
// A transport failure (server unreachable) is reported as EUNAVAILABLE so the
// wizard can show a generic network-error notification; a server rejection
// carries the server's own message.
func (c *Client) SubmitQuote(ctx context.Context, sub *domain.QuoteSubmission) (*wizard.Receipt, error) {
	bodyBytes, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("marshal quote submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quote", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.Unavailable(err, "apiclient.submit", "network error")
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var decoded quoteResponse
	if err := json.Unmarshal(respBytes, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !decoded.Success {
		message := decoded.Message
		if message == "" {
			message = fmt.Sprintf("quote submission failed with status %d", resp.StatusCode)
		}
		if resp.StatusCode == http.StatusBadRequest {
			return nil, domain.Invalid("apiclient.submit", message)
		}
		return nil, domain.Unavailable(nil, "apiclient.submit", message)
	}

	return &wizard.Receipt{QuoteID: decoded.QuoteID, Message: decoded.Message}, nil
}

// Compile-time interface check
var _ wizard.Submitter = (*Client)(nil)
