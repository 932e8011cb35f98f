package memory

import (
	"time"

	"prompt-tutor-be/pkg/tutor/session"

	"github.com/patrickmn/go-cache"
)

// StateRepository keeps the in-flight dialogue state of active sessions so a
// turn does not have to rebuild it from the database on every request. Expired
// entries are simply reloaded from persistence on the next turn.
type StateRepository struct {
	cache *cache.Cache
}

func NewStateRepository() *StateRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StateRepository{
		cache: c,
	}
}

func (r *StateRepository) Save(sessionId string, state *session.State) {
	r.cache.Set(sessionId, state, cache.DefaultExpiration)
}

func (r *StateRepository) Get(sessionId string) (*session.State, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*session.State), true
	}
	return nil, false
}

func (r *StateRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
