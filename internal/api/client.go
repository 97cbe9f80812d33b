// Package api is the HTTP client for the UART port server. It exposes the
// four endpoints the dashboard uses: the port snapshot plus the configure,
// disconnect, and test commands.
package api

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
	"os"
	"strings"
	"time"

	"github.com/ahpham123/uart-testing-2/internal/logger"
)

const (
	// DefaultBaseURL is the default port server URL.
	DefaultBaseURL = "http://127.0.0.1:5000"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second
)

// Client provides methods to interact with the port server API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets the port server base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new port server client with the given options.
// The UARTDASH_SERVER environment variable overrides the default base
// URL; explicit options override both.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: logger.Default(),
	}

	if u := os.Getenv("UARTDASH_SERVER"); u != "" {
		c.baseURL = u
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c
}

// BaseURL returns the server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ports fetches the full port snapshot: every port's configuration and
// status plus the capability lists.
func (c *Client) Ports(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ports", nil)
	if err != nil {
		return nil, NewAPIError("ports", 0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError("ports", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, NewAPIError("ports", resp.StatusCode, fmt.Errorf("%w: unexpected status", ErrBadResponse))
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, NewAPIError("ports", resp.StatusCode, fmt.Errorf("%w: %v", ErrBadResponse, err))
	}

	c.log.Debug("[api] GET /api/ports: %d ports, %d baud rates", len(snap.Ports), len(snap.AvailableBaudRates))
	return &snap, nil
}

// Configure asks the server to apply a new baud rate and parity to a port.
func (c *Client) Configure(ctx context.Context, req ConfigureRequest) (*CommandResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, NewAPIError("configure", 0, err)
	}
	return c.postCommand(ctx, "configure", c.baseURL+"/api/configure", bytes.NewReader(body))
}

// Disconnect asks the server to close a port.
func (c *Client) Disconnect(ctx context.Context, portID string) (*CommandResult, error) {
	return c.postCommand(ctx, "disconnect", c.commandURL("disconnect", portID), nil)
}

// Test asks the server to probe a port without changing its configuration.
func (c *Client) Test(ctx context.Context, portID string) (*CommandResult, error) {
	return c.postCommand(ctx, "test", c.commandURL("test", portID), nil)
}

// commandURL builds a per-port command URL. Port identifiers are device
// paths containing slashes, so they ride in the path escaped.
func (c *Client) commandURL(action, portID string) string {
	return c.baseURL + "/api/" + action + "/" + url.PathEscape(portID)
}

// postCommand sends a command request and decodes the shared result shape.
// The server reports application failures as 4xx/5xx with a JSON body
// carrying success=false and the reason, so the body is parsed before the
// status code is considered; that way the server's own words survive. Only
// an unreachable server or an unparseable body becomes a Go error.
func (c *Client) postCommand(ctx context.Context, op, u string, body io.Reader) (*CommandResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, NewAPIError(op, 0, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewAPIError(op, resp.StatusCode, fmt.Errorf("%w: %v", ErrBadResponse, err))
	}

	var result CommandResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, NewAPIError(op, resp.StatusCode, fmt.Errorf("%w: %v", ErrBadResponse, err))
	}

	c.log.Debug("[api] POST %s: success=%t status=%d", op, result.Success, resp.StatusCode)
	return &result, nil
}

// transportError classifies request failures into timeout vs unreachable.
func (c *Client) transportError(op string, err error) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return NewAPIError(op, 0, fmt.Errorf("%w: %v", ErrTimeout, err))
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewAPIError(op, 0, fmt.Errorf("%w: %v", ErrTimeout, err))
	}
	return NewAPIError(op, 0, fmt.Errorf("%w: %v", ErrUnavailable, err))
}
