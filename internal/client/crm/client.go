// Package crm is the GoHighLevel client used by the tag reconciler. All
// calls pass through a circuit breaker so a CRM outage degrades batch
// operations instead of hanging them.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/logger"
)

const (
	// DefaultBaseURL is the GoHighLevel API endpoint.
	DefaultBaseURL = "https://services.leadconnectorhq.com"

	// apiVersion is the GoHighLevel API version header value.
	apiVersion = "2021-07-28"

	// contactScanPageSize is the page size used when scanning for a
	// contact by email.
	contactScanPageSize = 100

	// maxContactScan bounds the email scan. The contacts endpoint has no
	// server-side email filter in this integration, so lookup is a linear
	// scan; past this many contacts we report not found. Known
	// external-API limitation.
	maxContactScan = 1000
)

// ErrContactNotFound is returned when no contact matches the email within
// the scan bound.
var ErrContactNotFound = errors.New("crm: contact not found")

// HTTPError is a non-2xx response from the CRM.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("crm: http %d: %s", e.StatusCode, e.Body)
}

// Contact is a CRM contact.
type Contact struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     string   `json:"phone"`
	Tags      []string `json:"tags"`
}

// Client talks to the GoHighLevel API for a single location.
type Client struct {
	baseURL    string
	token      string
	locationID string
	httpClient *http.Client
	breaker    *CircuitBreaker
	maxRetries uint64
	logger     *zap.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBreaker overrides the default circuit breaker.
func WithBreaker(b *CircuitBreaker) Option {
	return func(c *Client) { c.breaker = b }
}

// WithMaxRetries sets the transient-retry budget per call.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient creates a GoHighLevel client.
func NewClient(token, locationID string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		locationID: locationID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    NewCircuitBreaker(3, 5*time.Minute),
		maxRetries: 3,
		logger:     logger.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BreakerState exposes the circuit breaker state for the status endpoint.
func (c *Client) BreakerState() BreakerState {
	return c.breaker.State()
}

func isRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// doJSON performs one API call through the breaker, retrying transient
// failures with exponential backoff.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	if err := c.breaker.Allow(); err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "crm: marshal request body")
		}
	}

	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "crm: build request"))
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Version", apiVersion)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errors.Wrap(err, "crm: request failed")
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "crm: read response body")
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
			if isRetryable(resp.StatusCode) {
				return httpErr
			}
			return backoff.Permanent(httpErr)
		}

		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return backoff.Permanent(errors.Wrap(err, "crm: decode response"))
			}
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.breaker.RecordFailure()
		c.logger.Warn("CRM request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}

	c.breaker.RecordSuccess()
	return nil
}

type contactsResponse struct {
	Contacts []Contact `json:"contacts"`
	Meta     struct {
		Total int `json:"total"`
	} `json:"meta"`
}

// TestConnection verifies the token and location by fetching one contact.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.ListContacts(ctx, 1, 0)
	return err
}

// ListContacts returns one page of contacts for the configured location.
func (c *Client) ListContacts(ctx context.Context, limit, offset int) ([]Contact, error) {
	query := url.Values{}
	query.Set("locationId", c.locationID)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(offset))

	var resp contactsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/contacts/", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Contacts, nil
}

// FindContactByEmail scans the contact list for a case-insensitive email
// match, bounded at maxContactScan contacts.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (Contact, error) {
	target := strings.ToLower(strings.TrimSpace(email))
	if target == "" {
		return Contact{}, ErrContactNotFound
	}

	for offset := 0; offset < maxContactScan; offset += contactScanPageSize {
		contacts, err := c.ListContacts(ctx, contactScanPageSize, offset)
		if err != nil {
			return Contact{}, err
		}
		for _, contact := range contacts {
			if strings.ToLower(contact.Email) == target {
				return contact, nil
			}
		}
		if len(contacts) < contactScanPageSize {
			break
		}
	}
	return Contact{}, ErrContactNotFound
}

type tagsRequest struct {
	Tags []string `json:"tags"`
}

// AddTags adds tags to a contact. Existing tags are untouched.
func (c *Client) AddTags(ctx context.Context, contactID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	path := fmt.Sprintf("/contacts/%s/tags", contactID)
	return c.doJSON(ctx, http.MethodPost, path, nil, tagsRequest{Tags: tags}, nil)
}

// RemoveTags removes tags from a contact.
func (c *Client) RemoveTags(ctx context.Context, contactID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	path := fmt.Sprintf("/contacts/%s/tags", contactID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, tagsRequest{Tags: tags}, nil)
}
