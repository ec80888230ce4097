package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"uni-assistant-be/internal/constant"
	"uni-assistant-be/pkg/embedding"
	"uni-assistant-be/pkg/llm"
	"uni-assistant-be/pkg/rag/generate"
	"uni-assistant-be/pkg/rag/retriever"
	"uni-assistant-be/pkg/vectorindex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{1, 0}},
	}, nil
}

type stubIndex struct {
	matches []vectorindex.Match
	err     error
}

func (s *stubIndex) Search(ctx context.Context, vector []float32, k int) ([]vectorindex.Match, error) {
	return s.matches, s.err
}

// echoProvider replies with the prompt itself, so tests can observe exactly
// what the model was given.
type echoProvider struct {
	fixed string
	err   error
}

func (e *echoProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return e.Generate(ctx, history[len(history)-1].Content, opts...)
}

func (e *echoProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if e.fixed != "" {
		return e.fixed, nil
	}
	return prompt, nil
}

func newPipeline(emb *stubEmbedder, idx *stubIndex, provider llm.LLMProvider) *Pipeline {
	return NewPipeline(
		retriever.New(emb, idx),
		generate.New(provider),
		nopLogger{},
	)
}

func TestAnswerGroundedInRetrievedContext(t *testing.T) {
	idx := &stubIndex{matches: []vectorindex.Match{
		{Content: "Final exams begin on May 10.", Score: 0.9},
	}}
	p := newPipeline(&stubEmbedder{}, idx, &echoProvider{})

	answer := p.Answer(context.Background(), "When do final exams start?")

	// The echo model returns the prompt, proving the retrieved sentence and
	// the question both reached the model.
	assert.Contains(t, answer, "May 10.")
	assert.Contains(t, answer, "When do final exams start?")
	assert.Contains(t, answer, "Context:")
}

func TestAnswerConversationalWithEmptyIndex(t *testing.T) {
	p := newPipeline(&stubEmbedder{}, &stubIndex{}, &echoProvider{fixed: "Hi! How can I help you today?"})

	answer := p.Answer(context.Background(), "Hello!")

	assert.Equal(t, "Hi! How can I help you today?", answer)
}

func TestAnswerAlwaysReturnsDisplayableString(t *testing.T) {
	cases := map[string]*Pipeline{
		"generation failure": newPipeline(&stubEmbedder{}, &stubIndex{}, &echoProvider{err: errors.New("boom")}),
		"retrieval failure":  newPipeline(&stubEmbedder{err: errors.New("down")}, &stubIndex{}, &echoProvider{}),
		"happy path":         newPipeline(&stubEmbedder{}, &stubIndex{}, &echoProvider{}),
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			answer := p.Answer(context.Background(), "anything")
			require.NotEmpty(t, answer)
		})
	}
}

func TestAnswerMarksGenerationFailureInline(t *testing.T) {
	p := newPipeline(&stubEmbedder{}, &stubIndex{}, &echoProvider{err: errors.New("quota exceeded")})

	answer := p.Answer(context.Background(), "When do final exams start?")

	assert.True(t, strings.HasPrefix(answer, constant.AnswerErrorMarker))
	assert.Contains(t, answer, "quota exceeded")
}

func TestAnswerMarksRetrievalFailureInline(t *testing.T) {
	p := newPipeline(&stubEmbedder{}, &stubIndex{err: errors.New("index offline")}, &echoProvider{})

	answer := p.Answer(context.Background(), "When do final exams start?")

	assert.True(t, strings.HasPrefix(answer, constant.AnswerErrorMarker))
	assert.Contains(t, answer, "index offline")
}
