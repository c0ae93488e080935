package ports

import "context"

// EmbeddingClient turns text into a fixed-length vector. Implementations
// report their failures as domain.ErrProvider; they do not synthesize
// fallback vectors.
type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}
