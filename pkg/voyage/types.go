package voyage

// EmbedRequest is the request body for the embeddings API.
type EmbedRequest struct {
	Input []string `json:"input"` // Texts to embed
	Model string   `json:"model"` // Model name (e.g., "voyage-3")
}

// EmbedResponse is the response from the embeddings API.
type EmbedResponse struct {
	Object string          `json:"object"` // "list"
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  UsageInfo       `json:"usage"`
}

// EmbeddingData contains a single embedding vector.
type EmbeddingData struct {
	Object    string    `json:"object"`    // "embedding"
	Embedding []float32 `json:"embedding"` // Vector
	Index     int       `json:"index"`     // Position in input array
}

// RerankRequest is the request body for the rerank API.
type RerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model"` // Model name (e.g., "rerank-2")
	TopK      int      `json:"top_k,omitempty"`
}

// RerankResponse is the response from the rerank API.
type RerankResponse struct {
	Object string         `json:"object"` // "list"
	Data   []RerankResult `json:"data"`
	Model  string         `json:"model"`
	Usage  UsageInfo      `json:"usage"`
}

// RerankResult is a single reranked document reference.
type RerankResult struct {
	Index          int     `json:"index"` // Position in the input documents array
	RelevanceScore float64 `json:"relevance_score"`
}

// UsageInfo contains token usage statistics.
type UsageInfo struct {
	TotalTokens int `json:"total_tokens"`
}

// ErrorResponse is the error response from Voyage API.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
