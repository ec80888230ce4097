package constant

// Role names shared by the transcript store and the chat page.
const (
	ChatMessageRoleUser = "user"
	ChatMessageRoleBot  = "bot"
)

// AnswerErrorMarker prefixes every error surfaced inline as a chat answer so
// users can tell failures apart from real answers.
const AnswerErrorMarker = "❌"

// AssistantRolePreamble opens every prompt sent to the model.
const AssistantRolePreamble = "You are a helpful university assistant answering questions about university policies."

// PolicyRefusalSentence is the exact reply the model must give when a policy
// question cannot be answered from the retrieved documents. The wording is
// fixed; the chat page and downstream consumers match on it.
const PolicyRefusalSentence = "I am sorry, but the current university policy documents do not contain the answer to your question."

// PolicyRules are instructions to the model, not program logic. Rule
// enforcement is deliberately delegated to the model via the prompt.
const PolicyRules = `Follow these rules:
1. If the context below is non-empty and relevant, answer ONLY from the context. Do not invent facts.
2. If the context is empty, or the question is conversational (a greeting, small talk, or thanks), you may answer briefly and politely from general knowledge.
3. If the question appears to be a policy question but the context is empty or irrelevant, reply exactly: "` + PolicyRefusalSentence + `"`
