package vectorindex

import (
	"context"
	"sync"
)

// Lazy defers index construction until the first search. Concurrent first
// callers trigger at most one load; a load failure is remembered and returned
// to every subsequent caller rather than retried.
type Lazy struct {
	open func() (Index, error)

	once sync.Once
	idx  Index
	err  error
}

func NewLazy(open func() (Index, error)) *Lazy {
	return &Lazy{open: open}
}

func (l *Lazy) load() (Index, error) {
	l.once.Do(func() {
		l.idx, l.err = l.open()
	})
	return l.idx, l.err
}

func (l *Lazy) Search(ctx context.Context, vector []float32, k int) ([]Match, error) {
	idx, err := l.load()
	if err != nil {
		return nil, err
	}
	return idx.Search(ctx, vector, k)
}
