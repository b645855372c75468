// Package runner is a thin client for an external automation runner with an
// n8n-compatible REST API. Workflows synthesized by this server can be pushed
// to the runner and activated there. Calls are never retried; failures are
// surfaced to the caller.
package runner

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

const apiKeyHeader = "X-N8N-API-KEY"

// Client talks to the automation runner's REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient returns a client for the runner at baseURL. An empty baseURL
// yields a nil client, which callers treat as "runner not configured".
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type createResponse struct {
	ID string `json:"id"`
}

// CreateWorkflow uploads a workflow document and returns the runner-side ID.
func (c *Client) CreateWorkflow(ctx context.Context, doc json.RawMessage) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/workflows", bytes.NewReader(doc))
	if err != nil {
		return "", err
	}
	var resp createResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode runner response: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("runner response missing workflow id")
	}
	return resp.ID, nil
}

// Activate enables a workflow on the runner.
func (c *Client) Activate(ctx context.Context, remoteID string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/workflows/"+remoteID+"/activate", nil)
	return err
}

// Deactivate disables a workflow on the runner.
func (c *Client) Deactivate(ctx context.Context, remoteID string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/workflows/"+remoteID+"/deactivate", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build runner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("runner request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read runner response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("runner returned status %d", resp.StatusCode)
	}
	return data, nil
}
