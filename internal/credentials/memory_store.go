package credentials

import "sync"

// MemoryStore keeps the token in memory behind a mutex. Intended for
// tests and for embedding the client where no persistence is wanted.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the stored token, or ErrNoToken if empty.
func (s *MemoryStore) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// SetToken stores the token.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	return nil
}

// Clear removes the token.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return nil
}

// HasToken reports whether a token is stored.
func (s *MemoryStore) HasToken() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != ""
}
