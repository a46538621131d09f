// internal/persist/memory.go
package persist

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore holds snapshots in process memory. Used in tests and as the
// fallback when no durable backend is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(namespace string, v interface{}) error {
	s.mu.RLock()
	data, ok := s.data[namespace]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", namespace, err)
	}
	return nil
}

func (s *MemoryStore) Save(namespace string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", namespace, err)
	}
	s.mu.Lock()
	s.data[namespace] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(namespace string) error {
	s.mu.Lock()
	delete(s.data, namespace)
	s.mu.Unlock()
	return nil
}
