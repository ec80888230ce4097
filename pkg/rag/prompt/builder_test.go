package prompt

import (
	"strings"
	"testing"

	"uni-assistant-be/internal/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContainsStableMarkers(t *testing.T) {
	out := Build("Final exams begin on May 10.", "When do final exams start?")

	assert.Contains(t, out, constant.AssistantRolePreamble)
	assert.Contains(t, out, "Context:\n")
	assert.Contains(t, out, "Question:\n")
	assert.True(t, strings.HasSuffix(out, "Answer:\n"))
}

func TestBuildInterpolatesVerbatim(t *testing.T) {
	query := "When do final exams start?"
	ctx := "Final exams begin on May 10.\n\nGrades are due May 20."

	out := Build(ctx, query)

	assert.Contains(t, out, "Context:\n"+ctx+"\n\n")
	assert.Contains(t, out, "Question:\n"+query+"\n\n")
}

func TestBuildKeepsEmptyContextSection(t *testing.T) {
	out := Build("", "Hello!")

	// The section must be present even when empty so the model can apply the
	// conversational rules.
	assert.Contains(t, out, "Context:\n\n\n")
	assert.Contains(t, out, "Question:\nHello!")
}

func TestBuildEmbedsPolicyRules(t *testing.T) {
	out := Build("", "")

	assert.Contains(t, out, constant.PolicyRules)
	assert.Contains(t, out, constant.PolicyRefusalSentence)
}

func TestBuildIsPure(t *testing.T) {
	first := Build("some context", "some question")
	second := Build("some context", "some question")

	require.Equal(t, first, second)
}
