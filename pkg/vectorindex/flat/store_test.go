package flat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureChunks() ([]Chunk, [][]float32) {
	chunks := []Chunk{
		{ID: "c1", Content: "Final exams begin on May 10.", Source: "academic-calendar.pdf"},
		{ID: "c2", Content: "Library opens at 8am.", Source: "library-policy.pdf"},
		{ID: "c3", Content: "Attendance below 75% bars exam entry.", Source: "attendance-policy.pdf"},
	}
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	return chunks, vectors
}

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chunks, vectors := fixtureChunks()
	require.NoError(t, Save(dir, "text-embedding-004", 3, chunks, vectors))
	return dir
}

func TestOpenLoadsSnapshot(t *testing.T) {
	store, err := Open(writeFixture(t))

	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, 3, store.Dimension())
	assert.Equal(t, "text-embedding-004", store.Model())
}

func TestOpenMissingSnapshot(t *testing.T) {
	_, err := Open(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open index snapshot")
}

func TestOpenCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte("not a gob"), 0644))

	_, err := Open(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode index snapshot")
}

func TestSearchRanksBySimilarity(t *testing.T) {
	store, err := Open(writeFixture(t))
	require.NoError(t, err)

	matches, err := store.Search(context.Background(), []float32{0.9, 0.1, 0}, 2)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "c1", matches[0].ID)
	assert.Equal(t, "c2", matches[1].ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestSearchIsDeterministic(t *testing.T) {
	store, err := Open(writeFixture(t))
	require.NoError(t, err)

	first, err := store.Search(context.Background(), []float32{0.5, 0.5, 0}, 3)
	require.NoError(t, err)
	second, err := store.Search(context.Background(), []float32{0.5, 0.5, 0}, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearchClampsKToIndexSize(t *testing.T) {
	store, err := Open(writeFixture(t))
	require.NoError(t, err)

	matches, err := store.Search(context.Background(), []float32{1, 0, 0}, 10)

	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestSearchRejectsWrongDimension(t *testing.T) {
	store, err := Open(writeFixture(t))
	require.NoError(t, err)

	_, err = store.Search(context.Background(), []float32{1, 0}, 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}

func TestSaveRejectsLengthMismatch(t *testing.T) {
	chunks, _ := fixtureChunks()

	err := Save(t.TempDir(), "m", 3, chunks, [][]float32{{1, 0, 0}})

	require.Error(t, err)
}
