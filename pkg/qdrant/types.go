package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // collection name goes in the URL
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // must match the embedding model (1024 for voyage-3)
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point is one stored policy chunk: its embedding plus a payload
// carrying the chunk text, index, and source file.
// Qdrant requires the ID to be a UUID string or uint64.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest inserts or overwrites points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is a similarity search over a collection.
type SearchRequest struct {
	Vector      []float32              `json:"vector"`
	Limit       int                    `json:"limit"`
	WithPayload bool                   `json:"with_payload"`
	Filter      map[string]interface{} `json:"filter,omitempty"`
}

// SearchResponse contains scored search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search hit with its similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}
