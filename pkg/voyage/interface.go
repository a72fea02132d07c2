package voyage

import (
	"context"
)

// IVoyage is the embedding surface consumed by the semantic store.
// Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
