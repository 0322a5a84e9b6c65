package screening

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/aihelper/screening-backend/internal/entity"
)

// sessionEntry pairs a live session with its lock. Turns for one
// session serialize on the lock; different sessions run in parallel.
type sessionEntry struct {
	mu      sync.Mutex
	session *entity.ScreeningSession
}

// registry holds live sessions in a TTL cache. Expired sessions are
// dropped; their persisted records remain queryable through the
// repositories.
type registry struct {
	cache *gocache.Cache
}

func newRegistry(ttl time.Duration) *registry {
	return &registry{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (r *registry) put(s *entity.ScreeningSession) *sessionEntry {
	entry := &sessionEntry{session: s}
	r.cache.Set(s.ID, entry, gocache.DefaultExpiration)
	return entry
}

func (r *registry) get(sessionID string) (*sessionEntry, bool) {
	v, ok := r.cache.Get(sessionID)
	if !ok {
		return nil, false
	}
	// Sliding expiration: touching a session keeps it alive.
	r.cache.Set(sessionID, v, gocache.DefaultExpiration)
	return v.(*sessionEntry), true
}

func (r *registry) delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *registry) len() int {
	return r.cache.ItemCount()
}
