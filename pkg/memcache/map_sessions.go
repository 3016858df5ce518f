package mem

import (
	"sync"
	"time"

	"tripflow/pkg/mapkit"
)

// MapSessionStore tracks the live map engines, one per viewing session.
// Sessions idle past their TTL are dropped on the next access.
type MapSessionStore interface {
	Put(id string, engine *mapkit.Engine)
	Get(id string) (*mapkit.Engine, bool)
	Delete(id string)
	Len() int
}

type sessionEntry struct {
	engine   *mapkit.Engine
	lastSeen time.Time
}

type MapSessions struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]sessionEntry
}

func NewMapSessions(ttl time.Duration) *MapSessions {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &MapSessions{
		ttl:  ttl,
		data: make(map[string]sessionEntry),
	}
}

func (s *MapSessions) Put(id string, engine *mapkit.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = sessionEntry{engine: engine, lastSeen: time.Now()}
	s.sweepLocked()
}

// Get refreshes the session's TTL on every touch.
func (s *MapSessions) Get(id string) (*mapkit.Engine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Since(e.lastSeen) > s.ttl {
		delete(s.data, id)
		return nil, false
	}
	e.lastSeen = time.Now()
	s.data[id] = e
	return e.engine, true
}

func (s *MapSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *MapSessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// sweepLocked drops expired sessions; called with the write lock held.
func (s *MapSessions) sweepLocked() {
	if len(s.data) < 1000 {
		return
	}
	for id, e := range s.data {
		if time.Since(e.lastSeen) > s.ttl {
			delete(s.data, id)
		}
	}
}
