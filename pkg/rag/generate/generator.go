// Package generate wraps the hosted model call and converts every failure
// into a value. The pipeline and the UIs never see an error from here; a
// failed call becomes a marked, displayable answer.
package generate

import (
	"context"
	"errors"
	"fmt"

	"uni-assistant-be/internal/constant"
	"uni-assistant-be/pkg/llm"
)

type FailureKind string

const (
	// KindRequest covers transport failures: DNS, timeouts, cancellation.
	KindRequest FailureKind = "request"
	// KindStatus covers non-2xx replies: auth, quota, bad model name.
	KindStatus FailureKind = "status"
)

type Failure struct {
	Kind    FailureKind
	Message string
}

// Result carries either generated text or a structured failure, never both.
type Result struct {
	Text    string
	Failure *Failure
}

func (r Result) Ok() bool {
	return r.Failure == nil
}

// Display renders the result as chat text. Failures keep the fixed marker so
// users can tell them apart from real answers.
func (r Result) Display() string {
	if r.Ok() {
		return r.Text
	}
	return fmt.Sprintf("%s LLM API error (%s): %s", constant.AnswerErrorMarker, r.Failure.Kind, r.Failure.Message)
}

type Generator struct {
	provider llm.LLMProvider
}

func New(provider llm.LLMProvider) *Generator {
	return &Generator{provider: provider}
}

// Generate sends the prompt to the model. It never returns an error; external
// failures are folded into the Result.
func (g *Generator) Generate(ctx context.Context, prompt string) Result {
	text, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		return Result{Failure: classify(err)}
	}
	return Result{Text: text}
}

func classify(err error) *Failure {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		return &Failure{Kind: KindStatus, Message: apiErr.Error()}
	}
	return &Failure{Kind: KindRequest, Message: err.Error()}
}
