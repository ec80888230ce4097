package vectorindex

import "context"

// Match is a retrieved chunk with its similarity score (1.0 = identical
// direction, higher is more similar). Results come back in rank order.
type Match struct {
	ID      string
	Content string
	Source  string
	Score   float64
}

// Index performs nearest-neighbor lookup over pre-embedded policy chunks.
// Implementations are read-only after construction and safe for concurrent
// use.
type Index interface {
	Search(ctx context.Context, vector []float32, k int) ([]Match, error)
}
