package inventory

import (
	"context"
	"sync"
	"time"

	"app-reconciler/core/extract"
	"app-reconciler/core/netskope"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service fetches and caches the extracted application inventory.
type Service struct {
	client netskope.Client
	keys   extract.KeySet
	ttl    time.Duration
	logger *zap.Logger

	mu       sync.RWMutex
	entities []extract.Entity
	built    time.Time
	sf       singleflight.Group
}

// NewService creates a new inventory service. A zero ttl disables caching,
// so every call refetches.
func NewService(client netskope.Client, keys extract.KeySet, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		keys:   keys,
		ttl:    ttl,
		logger: logger,
	}
}

// Entities returns the extracted application inventory, served from the
// in-memory cache while it is fresh. Cold-cache callers share a single
// upstream fetch; a failed fetch leaves the cache untouched.
func (s *Service) Entities(ctx context.Context) ([]extract.Entity, error) {
	// Fast path: cache exists and is fresh
	s.mu.RLock()
	entities, fresh := s.entities, s.fresh()
	s.mu.RUnlock()

	if fresh {
		return entities, nil
	}

	// Slow path: rebuild using singleflight to prevent stampedes
	result, err, _ := s.sf.Do("inventory", func() (any, error) {
		// Double-check after acquiring the flight
		s.mu.RLock()
		entities, fresh := s.entities, s.fresh()
		s.mu.RUnlock()

		if fresh {
			return entities, nil
		}

		built, err := s.build(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entities = built
		s.built = time.Now()
		s.mu.Unlock()

		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]extract.Entity), nil
}

// Invalidate drops the cached inventory so the next call refetches.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.built = time.Time{}
	s.entities = nil
	s.mu.Unlock()
}

// fresh reports whether the cached inventory is still servable. Callers
// hold mu. A zero TTL means nothing is ever fresh.
func (s *Service) fresh() bool {
	if s.ttl == 0 || s.built.IsZero() {
		return false
	}
	return time.Since(s.built) <= s.ttl
}

// build fetches every inventory page and extracts the entity table, hosts
// included.
func (s *Service) build(ctx context.Context) ([]extract.Entity, error) {
	start := time.Now()

	pages, err := s.client.FetchAllPages(ctx)
	if err != nil {
		return nil, err
	}

	entities := extract.Extract(pages, s.keys, true)
	s.logger.Info("Inventory rebuilt",
		zap.Int("pages", len(pages)),
		zap.Int("applications", len(entities)),
		zap.Duration("took", time.Since(start)),
	)
	return entities, nil
}
