package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// EmbeddingService maps text to fixed-dimension vectors.
type EmbeddingService interface {
	// Embed generates a semantic vector for one text.
	Embed(ctx context.Context, text string) (EmbeddingVector, error)
	// EmbedBatch generates one vector per text, preserving the input order.
	EmbedBatch(ctx context.Context, texts []string) ([]EmbeddingVector, error)
}
