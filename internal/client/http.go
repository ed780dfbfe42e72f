package client

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

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/model"
)

// HTTPClient implements BoardClient using the diadi HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Derivation ---

func (c *HTTPClient) BuildBoard(ctx context.Context, req *BuildBoardRequest) (*BoardResponse, error) {
	q := url.Values{}
	for _, g := range req.Groups {
		q.Add("group", g.String())
	}
	for _, s := range req.Statuses {
		q.Add("status", s.String())
	}
	if req.Variant != "" {
		q.Set("variant", req.Variant.String())
	}

	path := "/v1/board"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	sessions := req.Sessions
	if sessions == nil {
		sessions = []model.Session{}
	}
	var resp BoardResponse
	if err := c.doJSON(ctx, http.MethodPost, path, sessions, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ResolveSession(ctx context.Context, s model.Session, variant model.LabelVariant) (*board.Card, error) {
	path := "/v1/sessions/resolve"
	if variant != "" {
		path += "?" + url.Values{"variant": {variant.String()}}.Encode()
	}
	var card board.Card
	if err := c.doJSON(ctx, http.MethodPost, path, s, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// --- Taxonomy ---

func (c *HTTPClient) ListStatuses(ctx context.Context) ([]board.StatusRow, error) {
	var resp struct {
		Statuses []board.StatusRow `json:"statuses"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/statuses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Statuses, nil
}

// --- Health ---

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON response.
// If result is nil, the response body is discarded.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
