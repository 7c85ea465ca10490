// Package recent keeps each client's most recent search queries.
package recent

import (
	"context"
	"errors"
	"strings"
	"sync"
)

const DefaultKey = "recent-searches"
const DefaultLimit = 5

var ErrMissingClient = errors.New("missing client id")

// Store persists a short most-recent-first list of queries per client.
type Store interface {
	Add(ctx context.Context, client, query string) ([]string, error)
	List(ctx context.Context, client string) ([]string, error)
	Remove(ctx context.Context, client, query string) ([]string, error)
	Clear(ctx context.Context, client string) error
}

// Push puts query at the front of list, dropping any earlier entry that
// differs only by case, and caps the result at limit. Blank queries leave the
// list unchanged.
func Push(list []string, query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}
	out := make([]string, 0, limit)
	out = append(out, query)
	for _, q := range list {
		if len(out) >= limit {
			break
		}
		if strings.EqualFold(q, query) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Drop removes query from list, ignoring case.
func Drop(list []string, query string) []string {
	query = strings.TrimSpace(query)
	out := make([]string, 0, len(list))
	for _, q := range list {
		if strings.EqualFold(q, query) {
			continue
		}
		out = append(out, q)
	}
	return out
}

type memoryStore struct {
	mu      sync.RWMutex
	limit   int
	entries map[string][]string
}

func NewMemoryStore(limit int) Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &memoryStore{limit: limit, entries: make(map[string][]string)}
}

func (m *memoryStore) Add(_ context.Context, client, query string) ([]string, error) {
	if client == "" {
		return nil, ErrMissingClient
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[client] = Push(m.entries[client], query, m.limit)
	return clone(m.entries[client]), nil
}

func (m *memoryStore) List(_ context.Context, client string) ([]string, error) {
	if client == "" {
		return nil, ErrMissingClient
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.entries[client]), nil
}

func (m *memoryStore) Remove(_ context.Context, client, query string) ([]string, error) {
	if client == "" {
		return nil, ErrMissingClient
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[client] = Drop(m.entries[client], query)
	return clone(m.entries[client]), nil
}

func (m *memoryStore) Clear(_ context.Context, client string) error {
	if client == "" {
		return ErrMissingClient
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, client)
	return nil
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
