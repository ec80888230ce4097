// Package store keeps per-session chat transcripts in memory. Transcripts are
// presentation state only; nothing here survives a restart.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

type ChatMessage struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"` // "user" | "bot"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TranscriptStore is an append-only transcript per session id, evicted after
// the configured idle TTL.
type TranscriptStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewTranscriptStore(ttl time.Duration) *TranscriptStore {
	return &TranscriptStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// EnsureSession returns sessionId, minting a fresh one when empty.
func (s *TranscriptStore) EnsureSession(sessionId string) string {
	if sessionId == "" {
		return uuid.NewString()
	}
	return sessionId
}

// Append adds a message to the session transcript and refreshes its TTL.
func (s *TranscriptStore) Append(sessionId, role, content string) ChatMessage {
	msg := ChatMessage{
		Id:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []ChatMessage
	if existing, found := s.cache.Get(sessionId); found {
		messages = existing.([]ChatMessage)
	}
	messages = append(messages, msg)
	s.cache.SetDefault(sessionId, messages)

	return msg
}

// Get returns the transcript for sessionId, empty when unknown or expired.
func (s *TranscriptStore) Get(sessionId string) []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, found := s.cache.Get(sessionId); found {
		messages := existing.([]ChatMessage)
		out := make([]ChatMessage, len(messages))
		copy(out, messages)
		return out
	}
	return []ChatMessage{}
}
