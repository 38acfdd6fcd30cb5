package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient talks to the server's REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Sanitize(ctx context.Context, message string) (*SanitizeResult, error) {
	var out SanitizeResult
	err := c.do(ctx, http.MethodPost, "/api/sanitize", map[string]string{"message": message}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListWords(ctx context.Context, activeOnly bool) ([]Word, error) {
	path := "/api/sensitivewords"
	if activeOnly {
		path += "?activeOnly=true"
	}
	var out []Word
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetWord(ctx context.Context, id string) (*Word, error) {
	var out Word
	if err := c.do(ctx, http.MethodGet, wordPath(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWord returns the id of the new word.
func (c *HTTPClient) CreateWord(ctx context.Context, word string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/sensitivewords", map[string]string{"word": word}, &out, http.StatusCreated)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *HTTPClient) UpdateWord(ctx context.Context, id string, upd WordUpdate) error {
	return c.do(ctx, http.MethodPut, wordPath(id), upd, nil, http.StatusNoContent)
}

func (c *HTTPClient) SetActive(ctx context.Context, id string, active bool) error {
	action := "/deactivate"
	if active {
		action = "/activate"
	}
	return c.do(ctx, http.MethodPost, wordPath(id)+action, nil, nil, http.StatusNoContent)
}

func (c *HTTPClient) DeleteWord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, wordPath(id), nil, nil, http.StatusNoContent)
}

// ImportWords returns the number of words actually inserted.
func (c *HTTPClient) ImportWords(ctx context.Context, words []string) (int, error) {
	var out struct {
		Inserted int `json:"inserted"`
	}
	err := c.do(ctx, http.MethodPost, "/api/sensitivewords/bulk", map[string][]string{"words": words}, &out, http.StatusOK)
	if err != nil {
		return 0, err
	}
	return out.Inserted, nil
}

func (c *HTTPClient) Stats(ctx context.Context, operationType string) ([]Stat, error) {
	path := "/api/statistics"
	if operationType != "" {
		path += "/" + url.PathEscape(operationType)
	}
	var out []Stat
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ResetStats(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/statistics/reset", nil, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Health returns the report for the given probe ("", "ready" or "live").
// An unhealthy server still yields a report; the 503 is not an error.
func (c *HTTPClient) Health(ctx context.Context, probe string) (*HealthReport, error) {
	path := "/health"
	if probe != "" {
		path += "/" + url.PathEscape(probe)
	}
	var out HealthReport
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK, http.StatusServiceUnavailable); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Metrics(ctx context.Context) (*Metrics, error) {
	var out Metrics
	if err := c.do(ctx, http.MethodGet, "/metrics", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func wordPath(id string) string {
	return "/api/sensitivewords/" + url.PathEscape(id)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, expected ...int) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	ok := false
	for _, code := range expected {
		if resp.StatusCode == code {
			ok = true
			break
		}
	}
	if !ok {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(data, &payload) == nil {
		apiErr.Message = payload.Error
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		apiErr.kind = ErrConflict
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		apiErr.kind = ErrBadRequest
	case resp.StatusCode == http.StatusBadGateway, resp.StatusCode == http.StatusServiceUnavailable:
		apiErr.kind = ErrUnavailable
	}
	return apiErr
}
