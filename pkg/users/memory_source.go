package users

import (
	"encoding/json"
	"sync"
)

// MemorySource implements Source from in-memory sections
type MemorySource struct {
	mu         sync.RWMutex
	users      json.RawMessage
	superusers json.RawMessage
}

// NewMemorySource creates a new MemorySource with empty sections
func NewMemorySource() *MemorySource {
	return &MemorySource{}
}

// SetUsers replaces the raw users section
func (s *MemorySource) SetUsers(raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = raw
}

// SetSuperusers replaces the raw superusers section
func (s *MemorySource) SetSuperusers(raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.superusers = raw
}

// Load implements Source
func (s *MemorySource) Load() (json.RawMessage, json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users, s.superusers, nil
}
