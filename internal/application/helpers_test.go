package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viralforge/creator-match/internal/domain"
	"github.com/viralforge/creator-match/internal/ports"
)

type fakeCreatorStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]domain.CreatorProfile
	missing  []uuid.UUID
	saved    map[uuid.UUID][]float32
}

func newFakeCreatorStore() *fakeCreatorStore {
	return &fakeCreatorStore{
		profiles: map[uuid.UUID]domain.CreatorProfile{},
		saved:    map[uuid.UUID][]float32{},
	}
}

func (s *fakeCreatorStore) add(p domain.CreatorProfile) {
	s.profiles[p.CreatorID] = p
	s.missing = append(s.missing, p.CreatorID)
}

func (s *fakeCreatorStore) GetProfile(_ context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return domain.CreatorProfile{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *fakeCreatorStore) ListMissingEmbeddings(_ context.Context, limit int) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.missing
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return append([]uuid.UUID(nil), out...), nil
}

func (s *fakeCreatorStore) SaveEmbedding(_ context.Context, id uuid.UUID, vector []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[id] = vector
	return nil
}

type fakeEmbedder struct {
	mu      sync.Mutex
	calls   int
	failOn  map[int]bool
	vector  []float32
	queries []string
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vector: []float32{0.1, 0.2, 0.3}, failOn: map[int]bool{}}
}

func (e *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	e.queries = append(e.queries, text)
	if e.failOn[e.calls] {
		return nil, fmt.Errorf("%w: quota exceeded", domain.ErrProvider)
	}
	return e.vector, nil
}

func (e *fakeEmbedder) Dimensions() int { return len(e.vector) }

type fakeSearcher struct {
	rows []ports.CandidateRow
	err  error
}

func (s *fakeSearcher) SearchCandidates(_ context.Context, _ []float32, _ domain.SearchFilters, limit int) ([]ports.CandidateRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	rows := s.rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return append([]ports.CandidateRow(nil), rows...), nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]domain.RecommendationResult
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]domain.RecommendationResult{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (*domain.RecommendationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if result, ok := c.entries[key]; ok {
		copied := result
		return &copied, nil
	}
	return nil, nil
}

func (c *memoryCache) Set(_ context.Context, key string, result domain.RecommendationResult, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = result
	return nil
}

func newTestService(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	svc := NewService(deps)
	svc.sleepFn = func(context.Context, time.Duration) {}
	return svc
}

func testCreator(name string) domain.CreatorProfile {
	return domain.CreatorProfile{
		CreatorID:       uuid.New(),
		DisplayName:     name,
		Niche:           domain.NicheTechGaming,
		Tier:            domain.TierMid,
		PrimaryPlatform: "instagram",
		Followers:       120_000,
		EngagementRate:  4.2,
	}
}
