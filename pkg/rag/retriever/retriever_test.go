package retriever

import (
	"context"
	"errors"
	"testing"

	"uni-assistant-be/pkg/embedding"
	"uni-assistant-be/pkg/vectorindex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: s.vector},
	}, nil
}

type stubIndex struct {
	matches []vectorindex.Match
	err     error
	gotK    int
}

func (s *stubIndex) Search(ctx context.Context, vector []float32, k int) ([]vectorindex.Match, error) {
	s.gotK = k
	return s.matches, s.err
}

func TestRetrieveJoinsMatchesInRankOrder(t *testing.T) {
	idx := &stubIndex{matches: []vectorindex.Match{
		{Content: "Final exams begin on May 10.", Score: 0.92},
		{Content: "Grades are due May 20.", Score: 0.75},
	}}
	r := New(&stubEmbedder{vector: []float32{1, 0}}, idx)

	got, err := r.Retrieve(context.Background(), "When do final exams start?")

	require.NoError(t, err)
	assert.Equal(t, "Final exams begin on May 10.\n\nGrades are due May 20.", got)
	assert.Equal(t, DefaultTopK, idx.gotK)
}

func TestRetrieveEmptyOnZeroMatches(t *testing.T) {
	r := New(&stubEmbedder{vector: []float32{1, 0}}, &stubIndex{})

	got, err := r.Retrieve(context.Background(), "Hello!")

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRetrieveIsDeterministic(t *testing.T) {
	idx := &stubIndex{matches: []vectorindex.Match{
		{Content: "chunk a"},
		{Content: "chunk b"},
	}}
	r := New(&stubEmbedder{vector: []float32{1, 0}}, idx)

	first, err := r.Retrieve(context.Background(), "question")
	require.NoError(t, err)
	second, err := r.Retrieve(context.Background(), "question")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRetrievePropagatesEmbeddingError(t *testing.T) {
	r := New(&stubEmbedder{err: errors.New("model unavailable")}, &stubIndex{})

	_, err := r.Retrieve(context.Background(), "question")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed query")
}

func TestRetrievePropagatesSearchError(t *testing.T) {
	r := New(&stubEmbedder{vector: []float32{1, 0}}, &stubIndex{err: errors.New("index offline")})

	_, err := r.Retrieve(context.Background(), "question")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search index")
}
