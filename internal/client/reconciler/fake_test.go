package reconciler

import (
	"context"
	"sync"
	"time"
)

// memSubstrate is an in-memory Substrate with failure injection.
type memSubstrate struct {
	mu   sync.Mutex
	name string
	data map[string]string
	ttls map[string]time.Duration

	getErr    error
	setErr    error
	removeErr error

	sets    int
	removes int
}

func newMem(name string) *memSubstrate {
	return &memSubstrate{name: name, data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memSubstrate) Name() string { return m.name }

func (m *memSubstrate) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memSubstrate) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memSubstrate) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes++
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.data, key)
	delete(m.ttls, key)
	return nil
}

func (m *memSubstrate) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memSubstrate) value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}
