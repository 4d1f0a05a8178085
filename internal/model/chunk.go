package model

// ContextChunk is a retrieved fragment of policy text with its
// similarity (or rerank relevance) score.
type ContextChunk struct {
	Text  string
	Score float64
}
