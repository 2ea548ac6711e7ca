// Package client is a Go client for the Corus API. Public content reads fall
// back to the bundled dataset when the service is unreachable or returns
// nothing, so callers always get something renderable; admin and mutation
// calls surface every failure. Mock provides an offline implementation of the
// same API interface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"corus-backend/internal/transport"
)

const (
	// DefaultTimeout is the per-request timeout applied when Config.Timeout
	// is zero. Every call shares it; there are no retries.
	DefaultTimeout = 30 * time.Second

	adminPathMarker = "/admin"
)

// Config holds construction parameters for a live Client.
type Config struct {
	// BaseURL is the API origin, e.g. "https://api.corusinitiative.com".
	BaseURL string
	// Token, when set, is used as a static bearer credential for admin
	// paths. TokenSource takes precedence when both are set.
	Token string
	// TokenSource supplies the bearer credential per request. Lookup
	// failures are treated as "no credential", never as request failures.
	TokenSource TokenSource
	// HTTPClient overrides the default client. When nil a client with a
	// cookie jar is used so login session cookies survive across calls.
	HTTPClient *http.Client
	// Timeout overrides DefaultTimeout. Ignored when HTTPClient is set.
	Timeout time.Duration
	// Logger receives a line per failed call. Defaults to slog.Default().
	Logger *slog.Logger
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *slog.Logger
	now        func() time.Time
}

func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("client: missing base URL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("client: invalid base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("client: cookie jar: %w", err)
		}
		httpClient = &http.Client{Timeout: timeout, Jar: jar}
	}

	tokens := cfg.TokenSource
	if tokens == nil && cfg.Token != "" {
		tokens = StaticToken(cfg.Token)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     tokens,
		log:        logger,
		now:        time.Now,
	}, nil
}

// envelope mirrors the server's uniform response shape. Data stays raw so
// each operation can decode into its own type.
type envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Data       json.RawMessage       `json:"data"`
	Pagination *transport.Pagination `json:"pagination"`
	Details    map[string]string     `json:"details"`
}

// do issues one request and decodes the envelope. Non-2xx statuses, transport
// failures and 2xx bodies with success=false all come back as *APIError with
// the message extracted in priority order: remote message, transport error,
// the literal "Unknown error".
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	env, err := c.attempt(ctx, method, path, body)
	if err != nil {
		c.log.Warn("api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}
	return env, nil
}

func (c *Client) attempt(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("client: marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("client: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachCredential(ctx, req, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: errorMessage(err.Error())}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(err.Error())}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
		if decodeErr == nil && env.Message != "" {
			apiErr.Message = env.Message
		} else {
			apiErr.Message = errorMessage("")
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw), Message: errorMessage("")}
	}
	if !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw), Message: errorMessage(env.Message)}
	}
	return &env, nil
}

// attachCredential adds the bearer header on admin-namespace paths when a
// token can be produced. Lookup failures leave the request uncredentialed;
// the service rejects what it must.
func (c *Client) attachCredential(ctx context.Context, req *http.Request, path string) {
	if !strings.Contains(path, adminPathMarker) || c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil || token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func (c *Client) getPaginated(ctx context.Context, path string, out interface{}) (*transport.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if err := decodeData(env, out); err != nil {
		return nil, err
	}
	return env.Pagination, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	env, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	env, err := c.do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	env, err := c.do(ctx, http.MethodPatch, path, body)
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func decodeData(env *envelope, out interface{}) error {
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("client: decode response data: %w", err)
	}
	return nil
}

func listQuery(page, limit int64, extra url.Values) string {
	values := url.Values{}
	if page > 0 {
		values.Set("page", fmt.Sprintf("%d", page))
	}
	if limit > 0 {
		values.Set("limit", fmt.Sprintf("%d", limit))
	}
	for key, vals := range extra {
		for _, v := range vals {
			if v != "" {
				values.Add(key, v)
			}
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
