package fastrac

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/config"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

// Client calls the Fastrac logistics provider. Every request carries the
// static access/secret key pair as headers; if either is missing the call
// fails before any network I/O is attempted.
type Client struct {
	baseURL    string
	accessKey  string
	secretKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Fastrac HTTP client
func NewClient(cfg config.FastracConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		accessKey:  cfg.AccessKey,
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// checkCredentials short-circuits to a configuration error when either key
// is unset, before any request is built
func (c *Client) checkCredentials() error {
	if c.accessKey == "" || c.secretKey == "" {
		return &errors.ErrConfiguration{Message: "missing API credentials"}
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to build %s URL: %w", op, err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	return c.do(op, req, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out interface{}) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out interface{}) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access-key", c.accessKey)
	req.Header.Set("secret-key", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Fastrac request failed", zap.String("operation", op), zap.Error(err))
		return &errors.ErrUpstream{Operation: op, Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.ErrUpstream{Operation: op, Body: "failed to read response: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Fastrac returned non-2xx",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
		)
		return &errors.ErrUpstream{Operation: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &errors.ErrUpstream{Operation: op, Body: "invalid JSON response: " + err.Error()}
	}
	return nil
}
