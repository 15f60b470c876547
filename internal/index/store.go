package index

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/aryannaik/arcade-search/internal/metrics"
)

// Store holds the content index behind a load-once guard. The first
// successful Load is cached until Invalidate; a failed load is returned to the
// caller and not cached, so the next Load tries again.
type Store struct {
	mu     sync.RWMutex
	idx    *Index
	gen    uint64 // bumped by Invalidate; a fetch started under an older gen is not cached
	source Source
	group  singleflight.Group
	logger *zap.Logger
}

// NewStore returns an empty store reading from source.
func NewStore(source Source, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		source: source,
		logger: logger,
	}
}

// Load returns the cached index, fetching it on first use. Concurrent first
// calls share one fetch, which is detached from the caller's cancellation;
// each caller stops waiting when its own ctx is done. Every failure matches
// ErrContentUnavailable.
func (s *Store) Load(ctx context.Context) (*Index, error) {
	if idx := s.Cached(); idx != nil {
		return idx, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(loadKey, func() (any, error) {
		if idx := s.Cached(); idx != nil {
			return idx, nil
		}
		return s.fetch(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, &LoadError{Source: s.source.String(), Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Index), nil
	}
}

const loadKey = "load"

func (s *Store) fetch(ctx context.Context) (*Index, error) {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	doc, err := s.source.Fetch(ctx)
	if err != nil {
		metrics.ContentLoadsTotal.WithLabelValues("error").Inc()
		s.logger.Error("Failed to load content", zap.String("source", s.source.String()), zap.Error(err))
		return nil, &LoadError{Source: s.source.String(), Err: err}
	}

	idx := New(doc)
	for _, skipped := range idx.Skipped() {
		s.logger.Debug("Skipping record", zap.Error(skipped))
	}

	s.mu.Lock()
	current := s.gen == gen
	if current {
		s.idx = idx
	}
	s.mu.Unlock()

	if !current {
		s.logger.Info("Content index invalidated during load, not caching",
			zap.String("source", s.source.String()))
		return idx, nil
	}

	metrics.ContentLoadsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("Content index loaded",
		zap.String("source", s.source.String()),
		zap.Int("games", len(doc.Games)),
		zap.Int("pages", len(doc.Pages)),
		zap.Int("categories", len(doc.Categories)),
		zap.Int("skipped", len(idx.Skipped())),
	)
	return idx, nil
}

// Cached returns the loaded index or nil if nothing is loaded yet.
func (s *Store) Cached() *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// Invalidate drops the cached index so the next Load fetches again. A fetch
// already in flight still answers its waiters but its result is not cached.
// Snapshots already handed out stay valid.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.idx = nil
	s.gen++
	s.mu.Unlock()

	s.group.Forget(loadKey)
}

// Count returns the number of searchable records in the cached index.
func (s *Store) Count() int {
	return s.Cached().Count()
}

// IsUnavailable reports whether err is a content load failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrContentUnavailable)
}
