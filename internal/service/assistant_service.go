package service

import (
	"context"

	"uni-assistant-be/internal/constant"
	"uni-assistant-be/internal/dto"
	"uni-assistant-be/internal/pkg/logger"
	"uni-assistant-be/pkg/rag"
	"uni-assistant-be/pkg/store"
)

// IAssistantService defines the assistant service interface
type IAssistantService interface {
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
	GetHistory(ctx context.Context, sessionId string) ([]*dto.ChatMessageResponse, error)
}

type assistantService struct {
	pipeline    *rag.Pipeline
	transcripts *store.TranscriptStore
	log         logger.ILogger
}

func NewAssistantService(pipeline *rag.Pipeline, transcripts *store.TranscriptStore, log logger.ILogger) IAssistantService {
	return &assistantService{
		pipeline:    pipeline,
		transcripts: transcripts,
		log:         log,
	}
}

// Ask answers one query and records both sides in the session transcript.
// The pipeline always yields a displayable string, so Ask only fails on
// transport-level problems above it.
func (s *assistantService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	sessionId := s.transcripts.EnsureSession(request.SessionId)

	s.log.Info("assistant", "answering query", map[string]interface{}{
		"session_id":   sessionId,
		"query_length": len(request.Query),
	})

	s.transcripts.Append(sessionId, constant.ChatMessageRoleUser, request.Query)

	answer := s.pipeline.Answer(ctx, request.Query)

	s.transcripts.Append(sessionId, constant.ChatMessageRoleBot, answer)

	return &dto.AskResponse{
		Answer:    answer,
		SessionId: sessionId,
	}, nil
}

// GetHistory returns the visible transcript for a session. Unknown or expired
// sessions yield an empty list, not an error.
func (s *assistantService) GetHistory(ctx context.Context, sessionId string) ([]*dto.ChatMessageResponse, error) {
	messages := s.transcripts.Get(sessionId)

	responses := make([]*dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = &dto.ChatMessageResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return responses, nil
}
