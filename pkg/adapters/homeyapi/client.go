// Package homeyapi provides a ports.Backend for the Homey Web API.
package homeyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aretw0/homey-mcp/internal/logging"
)

// Client talks to one Homey controller over its REST API.
// Retries for dial failures live here; the bridge core never retries.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	advanced   bool
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client (tests use httptest clients).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithLogger sets the logger for retry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// WithTimeout bounds each request, retries included.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

// WithoutAdvancedFlows reports the controller as lacking advanced flows.
func WithoutAdvancedFlows() Option {
	return func(cl *Client) { cl.advanced = false }
}

// BaseURL derives the API root. A local address wins over the cloud id;
// bare hosts get an http scheme.
func BaseURL(address, homeyID string) (string, error) {
	address = strings.TrimSpace(address)
	switch {
	case address != "":
		if !strings.Contains(address, "://") {
			address = "http://" + address
		}
		u, err := url.Parse(address)
		if err != nil {
			return "", fmt.Errorf("parse address: %w", err)
		}
		return strings.TrimRight(u.String(), "/"), nil
	case homeyID != "":
		return "https://" + url.PathEscape(homeyID) + ".connect.athom.com", nil
	}
	return "", ErrNoAddress
}

// NewClient creates a client for baseURL authenticated with a bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		logger:   logging.NewNop(),
		advanced: true,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
			Transport: &retryTransport{
				base:   NewTransport(),
				count:  2,
				delay:  time.Second,
				logger: c.logger,
			},
		}
	}
	return c
}

// SystemInfo is the subset of /api/manager/system/ the bridge reads.
type SystemInfo struct {
	HomeyVersion string `json:"homeyVersion"`
	HomeyModelID string `json:"homeyModelId"`
}

// Ping fetches system info, proving the address and token work.
func (c *Client) Ping(ctx context.Context) (*SystemInfo, error) {
	var info SystemInfo
	if err := c.get(ctx, "/api/manager/system/", jsonInto(&info)); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, decode func(io.Reader) error) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return parseAPIError(resp.StatusCode, body)
	}
	if decode == nil {
		return nil
	}
	if err := decode(resp.Body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// get performs a GET request and hands the body to decode.
func (c *Client) get(ctx context.Context, path string, decode func(io.Reader) error) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, decode)
}

// send performs a body-carrying request and ignores the response body.
func (c *Client) send(ctx context.Context, method, path string, body any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Dial returns a connector that pings the controller once before handing out the client.
func Dial(baseURL, token string, opts ...Option) func(ctx context.Context) (*Client, error) {
	return func(ctx context.Context) (*Client, error) {
		c := NewClient(baseURL, token, opts...)
		info, err := c.Ping(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", baseURL, err)
		}
		c.logger.Info("connected to controller", "url", baseURL, "version", info.HomeyVersion, "model", info.HomeyModelID)
		return c, nil
	}
}

func jsonInto(v any) func(io.Reader) error {
	return func(r io.Reader) error {
		return json.NewDecoder(r).Decode(v)
	}
}
