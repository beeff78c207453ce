package memory

import (
	"context"
	"sync"

	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/repository"
)

// Store is an in-process KVStore. It is the default backend and the reference
// implementation for the conformance tests.
type Store struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
	sets   map[string]map[string]struct{}
	lists  map[string][]string
}

var _ interfaces.KVStore = (*Store)(nil)

// New creates a new in-memory store
func New() *Store {
	return &Store{
		hashes: make(map[string]map[string]string),
		sets:   make(map[string]map[string]struct{}),
		lists:  make(map[string][]string),
	}
}

func (x *Store) HSet(ctx context.Context, key, field, value string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	h, ok := x.hashes[key]
	if !ok {
		h = make(map[string]string)
		x.hashes[key] = h
	}
	h[field] = value
	return nil
}

func (x *Store) HGet(ctx context.Context, key, field string) (string, bool, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	v, ok := x.hashes[key][field]
	return v, ok, nil
}

func (x *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make(map[string]string, len(x.hashes[key]))
	for k, v := range x.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (x *Store) SAdd(ctx context.Context, key string, members ...string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	s, ok := x.sets[key]
	if !ok {
		s = make(map[string]struct{})
		x.sets[key] = s
	}
	for _, m := range members {
		s[m] = struct{}{}
	}
	return nil
}

func (x *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]string, 0, len(x.sets[key]))
	for m := range x.sets[key] {
		out = append(out, m)
	}
	return out, nil
}

func (x *Store) LPush(ctx context.Context, key string, values ...string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	list := make([]string, 0, len(values)+len(x.lists[key]))
	for i := len(values) - 1; i >= 0; i-- {
		list = append(list, values[i])
	}
	x.lists[key] = append(list, x.lists[key]...)
	return nil
}

func (x *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	list := x.lists[key]
	from, to, ok := repository.ListBounds(int64(len(list)), start, stop)
	if !ok {
		return []string{}, nil
	}
	out := make([]string, to-from)
	copy(out, list[from:to])
	return out, nil
}
