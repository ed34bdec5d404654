package cache

import (
	"sync"
	"time"
)

// Store is a session-scoped key-value store for JSON payloads. Exactly one
// logical writer exists per key within a session; on a key collision the
// last writer wins. There is no per-key expiry and no invalidation; values
// live as long as the session does.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *memoryStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *memoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

type sessionEntry struct {
	store    *memoryStore
	lastSeen time.Time
}

// Manager owns the per-session stores. A store is created on first access,
// touched on every access, and torn down after the idle TTL elapses.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	done     chan struct{}
}

// NewManager creates a session manager with the given idle TTL and starts
// its eviction loop. ttl <= 0 falls back to 30 minutes.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	m := &Manager{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go m.evictLoop()
	return m
}

// Session returns the store for the given session ID, creating it if
// needed.
func (m *Manager) Session(id string) Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[id]
	if !ok {
		entry = &sessionEntry{store: newMemoryStore()}
		m.sessions[id] = entry
	}
	entry.lastSeen = time.Now()
	return entry.store
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the eviction loop and drops all sessions.
func (m *Manager) Close() {
	close(m.done)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]*sessionEntry)
}

func (m *Manager) evictLoop() {
	interval := m.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.evictIdle(now)
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, entry := range m.sessions {
		if now.Sub(entry.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
