package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	DefaultBaseURL     = "https://api.voyageai.com/v1"
	DefaultModel       = "voyage-3" // Latest model with 1024 dimensions
	DefaultRerankModel = "rerank-2"
)

// Client is the Voyage AI API client.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	rerankModel string
	httpClient  *http.Client
}

var _ IVoyage = (*Client)(nil)

// New creates a new Voyage AI client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("voyage API key is required")
	}

	return &Client{
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		model:       DefaultModel,
		rerankModel: DefaultRerankModel,
		httpClient:  &http.Client{},
	}, nil
}

// WithModel sets a custom embedding model (e.g., "voyage-3", "voyage-large-2").
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// WithRerankModel sets a custom rerank model (e.g., "rerank-2", "rerank-2-lite").
func (c *Client) WithRerankModel(model string) *Client {
	c.rerankModel = model
	return c
}

// WithBaseURL overrides the default Voyage API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Embed generates embeddings for the given texts.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	reqBody := EmbedRequest{
		Input: texts,
		Model: c.model,
	}

	var embedResp EmbedResponse
	if err := c.post(ctx, "/embeddings", reqBody, &embedResp); err != nil {
		return nil, err
	}

	embeddings := make([][]float32, len(embedResp.Data))
	for i, data := range embedResp.Data {
		embeddings[i] = data.Embedding
	}

	return embeddings, nil
}

// Rerank scores the documents against the query and returns the top-K
// results ordered by relevance (most relevant first). Each result carries
// the index of the document in the input slice.
func (c *Client) Rerank(ctx context.Context, query string, documents []string, topK int) ([]RerankResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no documents provided")
	}

	reqBody := RerankRequest{
		Query:     query,
		Documents: documents,
		Model:     c.rerankModel,
		TopK:      topK,
	}

	var rerankResp RerankResponse
	if err := c.post(ctx, "/rerank", reqBody, &rerankResp); err != nil {
		return nil, err
	}

	return rerankResp.Data, nil
}

// post executes a JSON POST against the Voyage API and decodes the response.
func (c *Client) post(ctx context.Context, path string, reqBody any, out any) error {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call Voyage API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Error.Message != "" {
			return fmt.Errorf("voyage API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("voyage API error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
