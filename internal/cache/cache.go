// Package cache implements the tag-keyed memoization layer between read
// requests and the document store.
//
// Entries are grouped under a tag (one per content type) and distinguished by
// a subkey (the parameter fingerprint: limit, slug, serialized filter). An
// entry stays valid until its tag is invalidated; a fallback TTL can be
// configured for deployments where not every mutation path calls the
// revalidation endpoint, but it is not the primary validity model.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Store holds memoized values keyed by (tag, subkey) and the path
// associations used by path-based revalidation.
type Store struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]map[string]entry
	paths   map[string][]string

	flight singleflight.Group
}

// New creates a Store. ttl is the fallback freshness window; zero means
// entries never expire on their own and live until invalidated.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]map[string]entry),
		paths:   make(map[string][]string),
	}
}

func (s *Store) lookup(tag, subkey string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[tag][subkey]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && time.Since(e.storedAt) > s.ttl {
		delete(s.entries[tag], subkey)
		return nil, false
	}
	return e.value, true
}

func (s *Store) put(tag, subkey string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.entries[tag]
	if !ok {
		sub = make(map[string]entry)
		s.entries[tag] = sub
	}
	sub[subkey] = entry{value: v, storedAt: time.Now()}
}

// get is the untyped core of Get. Misses for the same (tag, subkey) are
// collapsed into one outstanding compute via singleflight. Compute failures
// are returned but never stored, so the next call retries from scratch.
func (s *Store) get(ctx context.Context, tag, subkey string, compute func(context.Context) (any, error)) (any, error) {
	if v, ok := s.lookup(tag, subkey); ok {
		return v, nil
	}
	v, err, _ := s.flight.Do(tag+"\x00"+subkey, func() (any, error) {
		// Re-check: another flight may have stored the value between our
		// miss and acquiring the flight slot.
		if v, ok := s.lookup(tag, subkey); ok {
			return v, nil
		}
		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		s.put(tag, subkey, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns the memoized value for (tag, subkey), invoking compute only on
// a miss. Concurrent misses for the same key share one computation.
func Get[T any](ctx context.Context, s *Store, tag, subkey string, compute func(context.Context) (T, error)) (T, error) {
	v, err := s.get(ctx, tag, subkey, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops every entry under tag. Invalidating an unknown or already
// empty tag is a no-op.
func (s *Store) Invalidate(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, tag)
}

// Associate registers the tags a rendered path depends on, so that
// InvalidatePath can map a path back to cache entries. Repeated calls for the
// same path append.
func (s *Store) Associate(path string, tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[path] = append(s.paths[path], tags...)
}

// InvalidatePath invalidates every tag associated with path. Unknown paths
// are a no-op.
func (s *Store) InvalidatePath(path string) {
	s.mu.Lock()
	tags := append([]string(nil), s.paths[path]...)
	s.mu.Unlock()
	for _, tag := range tags {
		s.Invalidate(tag)
	}
}

// Len reports the number of live entries under tag.
func (s *Store) Len(tag string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[tag])
}
