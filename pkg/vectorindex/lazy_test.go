package vectorindex

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingIndex struct{}

func (countingIndex) Search(ctx context.Context, vector []float32, k int) ([]Match, error) {
	return []Match{{ID: "m", Content: "chunk", Score: 1}}, nil
}

func TestLazyLoadsOnceUnderConcurrency(t *testing.T) {
	var loads int32
	lazy := NewLazy(func() (Index, error) {
		atomic.AddInt32(&loads, 1)
		return countingIndex{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			matches, err := lazy.Search(context.Background(), []float32{1}, 5)
			assert.NoError(t, err)
			assert.Len(t, matches, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestLazyRemembersLoadError(t *testing.T) {
	var loads int32
	lazy := NewLazy(func() (Index, error) {
		atomic.AddInt32(&loads, 1)
		return nil, errors.New("index files missing")
	})

	_, err := lazy.Search(context.Background(), []float32{1}, 5)
	require.Error(t, err)

	_, err = lazy.Search(context.Background(), []float32{1}, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index files missing")

	// The failed load is not retried.
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}
