package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// InFlightRepository tracks which clients have a request outstanding.
// Entries expire on their own so a lost Release cannot lock a client out.
type InFlightRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewInFlightRepository(ttl time.Duration) *InFlightRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	// Purge expired items every minute
	c := cache.New(ttl, time.Minute)
	return &InFlightRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Acquire marks clientID busy. It reports false if it already was.
func (r *InFlightRepository) Acquire(clientID string) bool {
	return r.cache.Add(clientID, time.Now(), r.ttl) == nil
}

func (r *InFlightRepository) Release(clientID string) {
	r.cache.Delete(clientID)
}

func (r *InFlightRepository) Count() int {
	return r.cache.ItemCount()
}
