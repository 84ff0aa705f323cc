package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client wraps HTTP calls to the Confluence REST API.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client for a Confluence site such as
// https://example.atlassian.net.
func NewClient(baseURL, email, apiToken string, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		email:    email,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// SetCredentials updates the credentials used for subsequent requests.
func (c *Client) SetCredentials(email, apiToken string) {
	c.email = email
	c.apiToken = apiToken
}

// WithTimeout clones the client with a different HTTP timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	return NewClient(c.baseURL, c.email, c.apiToken, timeout)
}

// HTTPError is returned for responses with a 4xx or 5xx status.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// send executes an HTTP request and returns the raw body and status without
// interpreting the status code.
func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	switch {
	case c.email != "" && c.apiToken != "":
		req.SetBasicAuth(c.email, c.apiToken)
	case c.apiToken != "":
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

// do executes an HTTP request and turns error statuses into *HTTPError.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	respBody, status, err := c.send(ctx, method, path, body)
	if err != nil {
		return nil, status, err
	}

	if status >= 400 {
		if msg, ok := extractAPIErrorBody(respBody); ok {
			return nil, status, &HTTPError{StatusCode: status, Message: msg}
		}
		return nil, status, &HTTPError{
			StatusCode: status,
			Message:    fmt.Sprintf("HTTP %d: %s", status, strings.TrimSpace(string(respBody))),
		}
	}

	return respBody, status, nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	body, _, err := c.do(ctx, http.MethodGet, path, nil)
	return body, err
}

// decode unmarshals a JSON response body.
func decode[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// extractAPIErrorBody understands both the v1 ({"message": ...}) and the
// v2 ({"errors": [{"title": ...}]}) error shapes.
func extractAPIErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}

	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Code   string `json:"code"`
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}

	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg, true
	}
	for _, e := range payload.Errors {
		message := strings.TrimSpace(e.Title)
		if detail := strings.TrimSpace(e.Detail); detail != "" {
			message = detail
		}
		if msg, ok := formatAPIError(e.Code, message); ok {
			return msg, true
		}
	}
	return "", false
}

func formatAPIError(code, message string) (string, bool) {
	code = strings.TrimSpace(code)
	message = strings.TrimSpace(message)
	switch {
	case code != "" && message != "":
		return fmt.Sprintf("%s: %s", code, message), true
	case code != "":
		return code, true
	case message != "":
		return message, true
	default:
		return "", false
	}
}
