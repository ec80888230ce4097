package retriever

import (
	"context"
	"fmt"
	"strings"

	"uni-assistant-be/pkg/embedding"
	"uni-assistant-be/pkg/vectorindex"
)

// DefaultTopK is fixed per pipeline configuration.
const DefaultTopK = 5

// Retriever turns a free-text query into a context string: the top-K most
// similar policy chunks joined by blank lines, most similar first. It never
// modifies the index.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	index    vectorindex.Index
	topK     int
}

func New(embedder embedding.EmbeddingProvider, index vectorindex.Index) *Retriever {
	return &Retriever{
		embedder: embedder,
		index:    index,
		topK:     DefaultTopK,
	}
}

// Retrieve returns the concatenated chunk contents for query. Zero matches is
// a valid empty result, not an error; errors mean embedding or index search
// failed.
func (r *Retriever) Retrieve(ctx context.Context, query string) (string, error) {
	res, err := r.embedder.Generate(ctx, query, embedding.TaskTypeRetrievalQuery)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	matches, err := r.index.Search(ctx, res.Embedding.Values, r.topK)
	if err != nil {
		return "", fmt.Errorf("search index: %w", err)
	}

	if len(matches) == 0 {
		return "", nil
	}

	contents := make([]string, len(matches))
	for i, m := range matches {
		contents[i] = m.Content
	}
	return strings.Join(contents, "\n\n"), nil
}
