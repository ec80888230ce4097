// Package rag sequences retrieval, prompt composition, and generation. The
// pipeline has no branching of its own: whether a question is answered from
// the documents or conversationally is decided by the model via the prompt
// rules.
package rag

import (
	"context"
	"fmt"

	"uni-assistant-be/internal/constant"
	"uni-assistant-be/internal/pkg/logger"
	"uni-assistant-be/pkg/rag/generate"
	"uni-assistant-be/pkg/rag/prompt"
	"uni-assistant-be/pkg/rag/retriever"
)

type Pipeline struct {
	retriever *retriever.Retriever
	generator *generate.Generator
	log       logger.ILogger
}

func NewPipeline(ret *retriever.Retriever, gen *generate.Generator, log logger.ILogger) *Pipeline {
	return &Pipeline{
		retriever: ret,
		generator: gen,
		log:       log,
	}
}

// Answer runs one query through retrieve -> compose -> generate. It always
// returns a displayable string; retrieval and generation failures come back
// marked inline instead of as errors, so every caller has something to show.
func (p *Pipeline) Answer(ctx context.Context, query string) string {
	retrieved, err := p.retriever.Retrieve(ctx, query)
	if err != nil {
		p.log.Error("rag", "context retrieval failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Sprintf("%s Retrieval error: %s", constant.AnswerErrorMarker, err.Error())
	}

	composed := prompt.Build(retrieved, query)

	result := p.generator.Generate(ctx, composed)
	if !result.Ok() {
		p.log.Error("rag", "answer generation failed", map[string]interface{}{
			"kind":  string(result.Failure.Kind),
			"error": result.Failure.Message,
		})
	}
	return result.Display()
}
