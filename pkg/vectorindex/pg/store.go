// Package pg is the pgvector-backed index: policy chunks and their embeddings
// live in a Postgres table and nearest-neighbor search is delegated to the
// pgvector extension's cosine distance operator.
package pg

import (
	"context"

	"uni-assistant-be/pkg/vectorindex"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ContentEmbedding maps the pre-ingested content_embeddings table.
type ContentEmbedding struct {
	Id        uuid.UUID       `gorm:"primaryKey;type:uuid"`
	Content   string          `gorm:"type:text"`
	Source    string          `gorm:"type:text"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"`
}

func (ContentEmbedding) TableName() string {
	return "content_embeddings"
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Search(ctx context.Context, vector []float32, k int) ([]vectorindex.Match, error) {
	if k <= 0 {
		k = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so similarity is
	// 1 - (embedding <=> query).
	type row struct {
		ContentEmbedding
		Similarity float64
	}
	var rows []row

	queryVector := pgvector.NewVector(vector)

	err := s.db.WithContext(ctx).
		Table("content_embeddings").
		Select("content_embeddings.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(k).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	matches := make([]vectorindex.Match, len(rows))
	for i, r := range rows {
		matches[i] = vectorindex.Match{
			ID:      r.Id.String(),
			Content: r.Content,
			Source:  r.Source,
			Score:   r.Similarity,
		}
	}
	return matches, nil
}
