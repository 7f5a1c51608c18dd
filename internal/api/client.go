// Package api implements the client for the spreadsheet-backed shift
// preference web API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pinyuchen/shiftwish/internal/slot"
)

// Transport errors.
var (
	ErrEmptyBaseURL = errors.New("api base url is required")
	ErrEmptyStaffID = errors.New("staff id is required")
)

// BackendError is an ok=false response from the backend. Code is the
// machine-readable failure reason and is surfaced to the user verbatim.
type BackendError struct {
	Code string
}

func (e *BackendError) Error() string {
	if e.Code == "" {
		return "backend error: UNKNOWN"
	}
	return "backend error: " + e.Code
}

// StaffInfo is the identity echo in a state response.
type StaffInfo struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// StateResponse is the payload of a state fetch.
type StateResponse struct {
	OK            bool        `json:"ok"`
	Code          string      `json:"code"`
	Slots         []slot.Slot `json:"slots"`
	SelectedSlots []string    `json:"selectedSlots"`
	Staff         *StaffInfo  `json:"staff"`
}

// Submission is the payload of a submit call.
type Submission struct {
	StaffID string   `json:"staff_id"`
	Name    string   `json:"name"`
	Note    string   `json:"note"`
	Slots   []string `json:"slots"`
}

type submitResponse struct {
	OK   bool   `json:"ok"`
	Code string `json:"code"`
}

// Client talks to one deployment of the survey backend. Requests are
// paced with a small rate limit: the backend is a shared spreadsheet
// script, not a real API server.
type Client struct {
	baseURL    string
	library    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures optional client behavior.
type Option func(*Client)

// WithLibrary sets the deployment discriminator appended to every call.
func WithLibrary(library string) Option {
	return func(c *Client) {
		c.library = library
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		limiter: rate.NewLimiter(2, 2),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Library returns the deployment discriminator, if any.
func (c *Client) Library() string {
	return c.library
}

// State fetches the slot list and the staff member's recorded selections.
// An ok=false response is returned as *BackendError.
func (c *Client) State(ctx context.Context, staffID string) (*StateResponse, error) {
	if strings.TrimSpace(staffID) == "" {
		return nil, ErrEmptyStaffID
	}

	query := url.Values{}
	query.Set("action", "state")
	query.Set("staff_id", staffID)
	if c.library != "" {
		query.Set("library", c.library)
	}

	var state StateResponse
	if err := c.do(ctx, http.MethodGet, query, nil, &state); err != nil {
		return nil, fmt.Errorf("fetching state: %w", err)
	}
	if !state.OK {
		return nil, &BackendError{Code: state.Code}
	}
	return &state, nil
}

// Submit transmits the staff member's current selection. The backend
// applies the update to its tallies on a multi-minute delay; callers
// should surface that to the user.
func (c *Client) Submit(ctx context.Context, sub Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	query := url.Values{}
	query.Set("action", "submit")
	if c.library != "" {
		query.Set("library", c.library)
	}

	form := url.Values{}
	form.Set("payload", string(payload))

	var resp submitResponse
	if err := c.do(ctx, http.MethodPost, query, strings.NewReader(form.Encode()), &resp); err != nil {
		return fmt.Errorf("submitting selection: %w", err)
	}
	if !resp.OK {
		return &BackendError{Code: resp.Code}
	}
	return nil
}

// do performs one request against the backend and decodes the JSON body
// into target.
func (c *Client) do(ctx context.Context, method string, query url.Values, body *strings.Reader, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := c.baseURL + "?" + query.Encode()

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, reqURL, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, reqURL, nil)
	}
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
