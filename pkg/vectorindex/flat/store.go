// Package flat is a file-backed vector index: a gob snapshot of pre-embedded
// policy chunks loaded into memory and searched with a brute-force cosine
// scan. The snapshot is produced by an external ingestion step; this package
// only reads it.
package flat

import (
	"context"
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"uni-assistant-be/pkg/vectorindex"
)

// SnapshotFile is the single index file inside the configured directory.
const SnapshotFile = "index.gob"

// Chunk is one pre-embedded passage of a policy document.
type Chunk struct {
	ID      string
	Content string
	Source  string
}

type snapshot struct {
	Model     string
	Dimension int
	Chunks    []Chunk
	Vectors   [][]float32
}

// Store holds the loaded snapshot. Write-once at load, read-many afterwards.
type Store struct {
	mu   sync.RWMutex
	snap snapshot
}

// Open reads the snapshot from dir. A missing or corrupt snapshot is a
// configuration error; callers decide whether it is fatal at startup or at
// first use.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, SnapshotFile)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index snapshot %s: %w", path, err)
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode index snapshot %s: %w", path, err)
	}

	if len(snap.Chunks) != len(snap.Vectors) {
		return nil, fmt.Errorf("corrupt index snapshot %s: %d chunks but %d vectors",
			path, len(snap.Chunks), len(snap.Vectors))
	}
	for i, v := range snap.Vectors {
		if len(v) != snap.Dimension {
			return nil, fmt.Errorf("corrupt index snapshot %s: vector %d has dimension %d, want %d",
				path, i, len(v), snap.Dimension)
		}
	}

	return &Store{snap: snap}, nil
}

// Save writes a snapshot to dir. Used by ingestion tooling and test fixtures.
func Save(dir, model string, dimension int, chunks []Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, SnapshotFile))
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(snapshot{
		Model:     model,
		Dimension: dimension,
		Chunks:    chunks,
		Vectors:   vectors,
	})
}

func (s *Store) Len() int { return len(s.snap.Chunks) }

func (s *Store) Dimension() int { return s.snap.Dimension }

// Model reports the embedding model the snapshot was built with. Queries must
// be embedded with the same model for scores to be meaningful.
func (s *Store) Model() string { return s.snap.Model }

func (s *Store) Search(ctx context.Context, vector []float32, k int) ([]vectorindex.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = 5
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snap.Vectors) > 0 && len(vector) != s.snap.Dimension {
		return nil, fmt.Errorf("query vector has dimension %d, index expects %d",
			len(vector), s.snap.Dimension)
	}

	query := normalize(vector)

	// Stored vectors are normalized at build time, so cosine similarity is a
	// plain dot product and this stays a single linear scan.
	matches := make([]vectorindex.Match, len(s.snap.Vectors))
	for i, v := range s.snap.Vectors {
		matches[i] = vectorindex.Match{
			ID:      s.snap.Chunks[i].ID,
			Content: s.snap.Chunks[i].Content,
			Source:  s.snap.Chunks[i].Source,
			Score:   dot(v, query),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k], nil
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude == 0 || magnitude == 1 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
