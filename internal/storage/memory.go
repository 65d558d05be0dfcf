package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryArchiver keeps archives in memory. Used in tests and local runs.
type MemoryArchiver struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

var _ Archiver = (*MemoryArchiver)(nil)

// NewMemoryArchiver creates an empty archiver.
func NewMemoryArchiver() *MemoryArchiver {
	return &MemoryArchiver{objects: make(map[string][]byte)}
}

// Put stores a copy of body.
func (m *MemoryArchiver) Put(_ context.Context, key, _ string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), body...)
	return nil
}

// PresignedURL returns a fake link for a stored key.
func (m *MemoryArchiver) PresignedURL(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[key]; !ok {
		return "", fmt.Errorf("object not found: %s", key)
	}
	return "memory://" + key, nil
}

// Object returns a stored object.
func (m *MemoryArchiver) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.objects[key]
	return b, ok
}
