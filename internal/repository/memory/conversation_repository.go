package memory

import (
	"context"
	"sync"
	"time"

	"ai-datachat-be/internal/repository/contract"
	"ai-datachat-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// ConversationRepository keeps conversations in-process. go-cache gives
// thread-safe storage with idle expiry; the per-key mutex map makes
// append-then-truncate atomic per dataset without a global lock.
type ConversationRepository struct {
	cache *cache.Cache
	locks sync.Map // datasetId -> *sync.Mutex
}

func NewConversationRepository() *ConversationRepository {
	// Conversations idle for 24h are purged; the bound is enforced on
	// append, expiry only reclaims abandoned datasets.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) lockFor(datasetId string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(datasetId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (r *ConversationRepository) Get(_ context.Context, datasetId string) []store.Turn {
	mu := r.lockFor(datasetId)
	mu.Lock()
	defer mu.Unlock()

	x, found := r.cache.Get(datasetId)
	if !found {
		return []store.Turn{}
	}
	turns := x.([]store.Turn)
	out := make([]store.Turn, len(turns))
	copy(out, turns)
	return out
}

func (r *ConversationRepository) Append(_ context.Context, datasetId string, turns ...store.Turn) {
	if len(turns) == 0 {
		return
	}

	mu := r.lockFor(datasetId)
	mu.Lock()
	defer mu.Unlock()

	var existing []store.Turn
	if x, found := r.cache.Get(datasetId); found {
		existing = x.([]store.Turn)
	}

	updated := make([]store.Turn, 0, len(existing)+len(turns))
	updated = append(updated, existing...)
	updated = append(updated, turns...)
	if overflow := len(updated) - contract.MaxTurns; overflow > 0 {
		updated = updated[overflow:]
	}

	r.cache.Set(datasetId, updated, cache.DefaultExpiration)
}

func (r *ConversationRepository) Clear(_ context.Context, datasetId string) {
	mu := r.lockFor(datasetId)
	mu.Lock()
	defer mu.Unlock()

	// The mutex stays in the map; dropping it here could hand a second
	// goroutine a different lock for the same key.
	r.cache.Delete(datasetId)
}
