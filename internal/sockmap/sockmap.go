// Package sockmap implements the session map: a concurrent mapping from
// peer address to the bounded queue feeding that peer's local endpoint.
// Reads admit concurrency; writes are serialized, mirroring the
// Arc<RwLock<HashMap>> the UDP-over-TCP relay this package's API is
// modeled on uses for the same purpose.
package sockmap

import "sync"

// Map is a concurrent peer-address -> queue mapping. The zero value is
// ready to use.
type Map struct {
	mu   sync.RWMutex
	sess map[string]chan []byte
}

// New returns an empty session map.
func New() *Map {
	return &Map{sess: make(map[string]chan []byte)}
}

// Get returns the queue registered for addr, if any.
func (m *Map) Get(addr string) (chan []byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.sess[addr]
	return q, ok
}

// Insert registers queue under addr, replacing any existing entry.
func (m *Map) Insert(addr string, queue chan []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		m.sess = make(map[string]chan []byte)
	}
	m.sess[addr] = queue
}

// Remove deletes the entry for addr, if present.
func (m *Map) Remove(addr string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sess, addr)
}

// Len returns the number of live sessions.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sess)
}
