package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. Records go through Encode/Decode so
// it behaves like the persistent backends.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	saves   int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) (Record, error) {
	s.mu.RLock()
	data, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return Record{}, ErrNotFound
	}
	return Decode(data)
}

func (s *MemoryStore) Save(_ context.Context, key string, rec Record) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = data
	s.saves++
	return nil
}

// Put stores raw bytes under key, bypassing encoding.
func (s *MemoryStore) Put(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), raw...)
}

// Raw returns the bytes stored under key.
func (s *MemoryStore) Raw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	return data, ok
}

// Saves returns how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func (s *MemoryStore) Close() error {
	return nil
}
