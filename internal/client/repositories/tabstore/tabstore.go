// Package tabstore implements the tab-scoped ephemeral substrate: a
// thread-safe in-memory map that lives exactly as long as one client
// instance (one "tab") and is never written to disk.
//
// It carries session state across the window right after login in which the
// cookie has not yet been observed on the destination subdomain.
package tabstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	tabID string
	data  map[string]string
}

// New creates an empty store with a fresh random tab id.
func New() *Store {
	return &Store{tabID: uuid.NewString(), data: make(map[string]string)}
}

// TabID identifies the tab in log records.
func (s *Store) TabID() string { return s.tabID }

func (s *Store) Name() string { return "tab" }

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value until the tab closes; ttl is ignored.
func (s *Store) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close drops every value, as closing a browser tab does.
func (s *Store) Close() {
	s.mu.Lock()
	clear(s.data)
	s.mu.Unlock()
}
