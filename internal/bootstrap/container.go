package bootstrap

import (
	"fmt"
	"log"
	"time"

	"uni-assistant-be/internal/config"
	"uni-assistant-be/internal/controller"
	"uni-assistant-be/internal/pkg/logger"
	"uni-assistant-be/internal/service"
	"uni-assistant-be/pkg/database"
	"uni-assistant-be/pkg/embedding"
	"uni-assistant-be/pkg/llm/factory"
	"uni-assistant-be/pkg/rag"
	"uni-assistant-be/pkg/rag/generate"
	"uni-assistant-be/pkg/rag/retriever"
	"uni-assistant-be/pkg/store"
	"uni-assistant-be/pkg/vectorindex"
	"uni-assistant-be/pkg/vectorindex/flat"
	"uni-assistant-be/pkg/vectorindex/pg"
)

type Container struct {
	ChatController controller.IChatController
	Logger         logger.ILogger
}

// OpenIndex constructs the configured index backend. The flat backend pays
// the snapshot load cost here; callers that want to defer it wrap this in
// vectorindex.NewLazy.
func OpenIndex(cfg *config.Config) (vectorindex.Index, error) {
	switch cfg.Index.Backend {
	case "flat":
		idx, err := flat.Open(cfg.Index.Path)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] Flat index loaded: %d chunks, dim %d, model %s",
			idx.Len(), idx.Dimension(), idx.Model())
		return idx, nil
	case "pgvector":
		if cfg.Database.Connection == "" {
			return nil, fmt.Errorf("pgvector backend requires DB_CONNECTION_STRING")
		}
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			return nil, fmt.Errorf("connect pgvector database: %w", err)
		}
		log.Printf("[INFO] Using pgvector index backend")
		return pg.New(db), nil
	default:
		return nil, fmt.Errorf("unsupported vector backend: %s", cfg.Index.Backend)
	}
}

// NewPipeline wires embedding provider, index, and LLM provider into the
// answer pipeline. Provider selection follows configuration; a missing
// credential for the selected provider is a configuration error.
func NewPipeline(cfg *config.Config, idx vectorindex.Index, sysLogger logger.ILogger) (*rag.Pipeline, error) {
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		if cfg.Keys.GoogleGemini == "" {
			return nil, fmt.Errorf("gemini embedding provider requires GOOGLE_GEMINI_API_KEY")
		}
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: GEMINI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	ret := retriever.New(embeddingProvider, idx)
	gen := generate.New(llmProvider)

	return rag.NewPipeline(ret, gen, sysLogger), nil
}

func NewContainer(cfg *config.Config, idx vectorindex.Index) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	pipeline, err := NewPipeline(cfg, idx, sysLogger)
	if err != nil {
		return nil, err
	}

	transcripts := store.NewTranscriptStore(
		time.Duration(cfg.App.SessionTTLMinutes) * time.Minute,
	)

	assistantService := service.NewAssistantService(pipeline, transcripts, sysLogger)

	return &Container{
		ChatController: controller.NewChatController(assistantService),
		Logger:         sysLogger,
	}, nil
}
