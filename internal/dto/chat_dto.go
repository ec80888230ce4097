package dto

import (
	"time"

	"github.com/google/uuid"
)

// AskRequest matches the chat widget's POST /ask body. Query may be empty; a
// degenerate query is still a valid request.
type AskRequest struct {
	Query     string `json:"query"`
	SessionId string `json:"session_id,omitempty" validate:"omitempty,uuid4"`
}

type AskResponse struct {
	Answer    string `json:"answer"`
	SessionId string `json:"session_id"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
