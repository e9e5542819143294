// Package client wraps all outbound requests to the portal backend. It
// attaches the bearer token when one is present and surfaces failures
// uniformly; it never touches the application state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// Client is the REST client for the portal backend
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger

	mu    sync.RWMutex
	token string
}

// New creates a Client for the given backend base URL
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently installed bearer token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Call performs a JSON request against the backend. On a non-2xx response it
// returns an HTTPError carrying the parsed error body message (or a
// synthesized "HTTP <status>"); it never returns a partial result.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req)
}

// FilePart is one file attached to a multipart submission
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// CallWithFormData POSTs a multipart form to the backend. Field order is not
// significant to the backend; the multipart writer sets the boundary
// content-type itself.
func (c *Client) CallWithFormData(ctx context.Context, endpoint string, fields map[string]string, files []FilePart) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.FileName)
		if err != nil {
			return nil, fmt.Errorf("create form file %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("copy form file %s: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("endpoint", req.URL.Path).Msg("Backend request failed")
		return nil, apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkError(err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("endpoint", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewHTTPError(resp.StatusCode, errorMessage(resp.StatusCode, payload))
	}

	return payload, nil
}

// errorMessage extracts a message from a JSON error body, falling back to a
// synthesized "HTTP <status>" string.
func errorMessage(status int, payload []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}
