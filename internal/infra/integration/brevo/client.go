package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/brand-bridge/internal/metrics"
)

const (
	serviceName = "brevo"

	opCreateContact = "create_contact"
	opUpdateContact = "update_contact"

	// error bodies are only decoded for code/message
	maxErrorBody = 64 << 10
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateContact creates the contact, or updates it when UpdateEnabled is set
// and the email already exists.
func (c *Client) CreateContact(ctx context.Context, input CreateContactInput) error {
	payload := createContactRequest{
		Email:         input.Email,
		Attributes:    input.Attributes,
		ListIDs:       input.ListIDs,
		UpdateEnabled: input.UpdateEnabled,
	}
	return c.do(ctx, opCreateContact, http.MethodPost, "/contacts", payload, isSuccess)
}

// UpdateContact patches the attributes of the contact identified by email.
// Only 200 and 204 count as applied; any other status comes back as *APIError.
func (c *Client) UpdateContact(ctx context.Context, email string, input UpdateContactInput) error {
	payload := updateContactRequest{Attributes: input.Attributes}
	return c.do(ctx, opUpdateContact, http.MethodPut, "/contacts/"+url.PathEscape(email), payload, isUpdateApplied)
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

func isUpdateApplied(status int) bool {
	return status == http.StatusOK || status == http.StatusNoContent
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any, accepted func(int) bool) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("brevo %s: marshal payload: %w", op, err)
	}

	// Once issued the call runs to completion or to the client timeout,
	// even if the inbound request goes away.
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("brevo %s: build request: %w", op, err)
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// *url.Error prints the URL, which embeds the email on updates
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		if isTimeout(err) {
			metrics.RecordIntegrationCall(serviceName, op, "timeout", time.Since(start))
			return fmt.Errorf("%w: %s: %v", ErrTimeout, op, err)
		}
		metrics.RecordIntegrationCall(serviceName, op, "transport_error", time.Since(start))
		return fmt.Errorf("%w: %s: %v", ErrTransport, op, err)
	}
	defer resp.Body.Close()

	metrics.RecordIntegrationCall(serviceName, op, strconv.Itoa(resp.StatusCode), time.Since(start))

	if accepted(resp.StatusCode) {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return newAPIError(resp.StatusCode, raw)
}

// setHeaders sets what every Brevo call needs.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "BrandBridge/1.0")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
