package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Cheertaboi/minimal-shop/internal/cart"
	"github.com/Cheertaboi/minimal-shop/internal/contact"
	"github.com/Cheertaboi/minimal-shop/internal/models"
)

// Session is everything one browser owns: its cart and the page state around
// it. Fields are only touched inside SessionCache.With.
type Session struct {
	ID            string
	Cart          *cart.Cart
	ActiveSection string
	Notices       []models.Notice
	ContactDraft  contact.Form

	mu       sync.Mutex
	lastSeen time.Time
}

type SessionCache struct {
	mu    sync.RWMutex
	store map[string]*Session
	ttl   time.Duration
	now   func() time.Time
}

func NewSessionCache(ttl time.Duration) *SessionCache {
	return &SessionCache{
		store: make(map[string]*Session),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *SessionCache) newSession(id string) *Session {
	return &Session{
		ID:            id,
		Cart:          cart.New(),
		ActiveSection: "home",
		lastSeen:      c.now(),
	}
}

// Create starts a session under a fresh random id.
func (c *SessionCache) Create() *Session {
	s := c.newSession(uuid.NewString())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[s.ID] = s
	return s
}

func (c *SessionCache) Get(id string) (*Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.store[id]
	return s, ok
}

func (c *SessionCache) getOrCreate(id string) *Session {
	if s, ok := c.Get(id); ok {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.store[id]; ok {
		return s
	}
	s := c.newSession(id)
	c.store[id] = s
	return s
}

// With runs fn with exclusive access to the session, creating it if it has
// expired in the meantime. Calls for the same id run one at a time, in the
// order they acquire the lock.
func (c *SessionCache) With(id string, fn func(s *Session)) {
	s := c.getOrCreate(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = c.now()
	fn(s)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed. A zero TTL keeps sessions forever.
func (c *SessionCache) Sweep(now time.Time) int {
	if c.ttl <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for id, s := range c.store {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen)
		s.mu.Unlock()
		if idle > c.ttl {
			delete(c.store, id)
			removed++
		}
	}
	return removed
}

func (c *SessionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
