// Package wolfram is a client for the Wolfram|Alpha Short Answers API.
package wolfram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the Short Answers API endpoint.
const DefaultBaseURL = "https://api.wolframalpha.com/v1/result"

const (
	defaultTimeout = 8 * time.Second
	maxAnswerBytes = 64 << 10
)

var (
	// ErrNoAppID is returned when the client has no application id.
	ErrNoAppID = errors.New("wolfram app id not configured")
	// ErrNoAnswer is returned for any non-200 response.
	ErrNoAnswer = errors.New("wolfram returned no answer")
)

// Client queries the computation service.
type Client struct {
	appID   string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the HTTP client timeout. A client passed with
// WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.client
			hc.Timeout = d
			c.client = &hc
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func New(appID string, opts ...Option) *Client {
	c := &Client{
		appID:   appID,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result returns the short answer for input.
func (c *Client) Result(ctx context.Context, input string) (string, error) {
	if c.appID == "" {
		return "", ErrNoAppID
	}

	params := url.Values{}
	params.Set("appid", c.appID)
	params.Set("i", input)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("wolfram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrNoAnswer, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAnswerBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read wolfram answer: %w", err)
	}

	return string(body), nil
}

// Query implements assistant.Computation. Every failure is reported as no
// result.
func (c *Client) Query(ctx context.Context, text string) (string, bool) {
	answer, err := c.Result(ctx, text)
	if err != nil {
		if errors.Is(err, ErrNoAppID) {
			c.logger.Debug().Msg("skipping computation lookup, no app id")
		} else {
			c.logger.Warn().Err(err).Msg("computation lookup failed")
		}
		return "", false
	}
	return strings.TrimRight(answer, "\r\n"), true
}
