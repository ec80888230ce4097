// Package prompt composes the instruction text sent to the model. The
// factual-vs-conversational branching lives in the rules text here, not in
// program logic: the model is trusted to follow them.
package prompt

import (
	"strings"

	"uni-assistant-be/internal/constant"
)

// Build is pure: identical inputs yield byte-identical prompts. The layout is
// stable — role preamble, policy rules, then the two variable fields under
// "Context:" and "Question:", closed by an "Answer:" anchor to cue
// completion-style generation. An empty context is still written out so the
// model can tell "nothing retrieved" apart from a missing section.
func Build(context, query string) string {
	b := builder{context: context, query: query}
	return b.build()
}

type builder struct {
	context string
	query   string
}

func (b *builder) build() string {
	var prompt strings.Builder

	b.writePreamble(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *builder) writePreamble(prompt *strings.Builder) {
	prompt.WriteString(constant.AssistantRolePreamble)
	prompt.WriteString("\n")
	prompt.WriteString(constant.PolicyRules)
	prompt.WriteString("\n\n")
}

func (b *builder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("Context:\n")
	prompt.WriteString(b.context)
	prompt.WriteString("\n\n")
}

func (b *builder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("Question:\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n\n")
	prompt.WriteString("Answer:\n")
}
