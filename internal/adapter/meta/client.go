package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ad-launcher/internal/config/configs"
)

// Client is a thin wrapper around the Meta Marketing Graph API. It is an
// outbound adapter: it appends the access token to every call, enforces a
// fixed transport timeout and normalises remote errors into *APIError.
// It performs no retries; callers always see the failure.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	accountID string
	logger    *slog.Logger
}

// NewClient builds a client from the Meta configuration section. The
// base URL and API version are joined once here so request paths stay
// relative (e.g. "/act_123/campaigns").
func NewClient(cfg configs.Meta, logger *slog.Logger) *Client {
	return &Client{
		http:      &http.Client{Timeout: 30 * time.Second},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion,
		token:     cfg.AccessToken,
		accountID: cfg.AdAccountID,
		logger:    logger,
	}
}

// AccountID returns the configured "act_"-prefixed ad account identifier.
func (c *Client) AccountID() string { return c.accountID }

// Get performs a GET with the given query parameters plus the access token.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, params)
}

// Post performs a POST. The Graph API accepts mutation parameters in the
// query string; nested structures must already be JSON-encoded into
// string-valued fields by the caller.
func (c *Client) Post(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, params)
}

// Delete performs a DELETE carrying only the access token.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values) (json.RawMessage, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("access_token", c.token)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("graph api network error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err))
		return nil, fmt.Errorf("graph api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("graph api %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.remoteError(method, path, resp.StatusCode, body)
	}
	return body, nil
}

// remoteError decodes the Graph API error envelope and logs its diagnostic
// fields. Two well-known codes get an extra hint; none are retried.
func (c *Client) remoteError(method, path string, status int, body []byte) error {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		c.logger.Error("graph api error without error payload",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status))
		return fmt.Errorf("graph api %s %s: unexpected status %d", method, path, status)
	}

	apiErr := envelope.Error
	c.logger.Error("graph api error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("code", apiErr.Code),
		slog.String("type", apiErr.Type),
		slog.String("message", apiErr.Message),
		slog.String("trace_id", apiErr.TraceID))

	switch apiErr.Code {
	case CodeExpiredToken:
		c.logger.Error("access token has expired, get a new one from https://developers.facebook.com/tools/explorer/")
	case CodeRateLimit:
		c.logger.Error("rate limit hit, wait a moment before retrying")
	}
	return apiErr
}

// decodeID extracts the id from an object-creation response.
func decodeID(raw json.RawMessage) (string, error) {
	var res struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	return res.ID, nil
}

// decodeList extracts the data array from a listing response. A missing
// data key yields an empty slice.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return envelope.Data, nil
}

func decodeOne[T any](raw json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &v, nil
}
