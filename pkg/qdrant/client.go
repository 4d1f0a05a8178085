package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client talks to the Qdrant REST API. The assistant keeps all policy
// manual chunks in a single collection and only upserts and searches;
// collection management happens once at ingest time.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Qdrant client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// CreateCollection provisions a collection sized for the embedding model.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, req.Name)
	return c.do(ctx, http.MethodPut, url, req, nil)
}

// UpsertPoints writes policy chunks; points with identical IDs are
// overwritten in place, which makes re-ingest idempotent.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPut, url, req, nil)
}

// SearchPoints runs a similarity search over a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collectionName)
	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do sends a JSON request and decodes the body into out when non-nil.
func (c *Client) do(ctx context.Context, method, url string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
