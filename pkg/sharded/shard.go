package sharded

import (
	"sync"
)

type (
	// Visitor visits every entry unconditionally.
	Visitor[K comparable, V any] func(key K, value V)

	// CondVisitor visits entries until it returns false.
	CondVisitor[K comparable, V any] func(key K, value V) bool

	// Shard is one lock-guarded partition of the key space. Its map storage
	// is allocated lazily on the first write, so shards which are never
	// written cost a mutex and two words.
	Shard[K comparable, V any] struct {
		mu      sync.Mutex
		id      uint64
		initLen int
		items   map[K]V // nil until first write
	}
)

func NewShard[K comparable, V any](id uint64, initLen int) *Shard[K, V] {
	return &Shard[K, V]{
		id:      id,
		initLen: initLen,
	}
}

func (shard *Shard[K, V]) ID() uint64 {
	return shard.id
}

// Find returns a copy of the stored value. The copy stays usable after the
// lock is released even if the entry is erased right afterwards, which is why
// values are expected to be pointers or shared handles rather than the
// elements themselves.
func (shard *Shard[K, V]) Find(key K) (value V, found bool) {
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if shard.items == nil {
		return value, false
	}
	value, found = shard.items[key]
	return value, found
}

// TryEmplace inserts the value produced by construct if the key is absent.
// construct runs under the shard lock and only on actual insertion.
// The returned value is an owned copy of whatever is stored (new or
// pre-existing), never a reference into shard storage.
func (shard *Shard[K, V]) TryEmplace(key K, construct func() V) (value V, inserted bool) {
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if shard.items == nil {
		shard.items = make(map[K]V, shard.initLen)
	} else if existing, found := shard.items[key]; found {
		return existing, false
	}
	value = construct()
	shard.items[key] = value
	return value, true
}

// Erase removes the key if present and reports the number removed (0 or 1).
func (shard *Shard[K, V]) Erase(key K) int {
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if shard.items == nil {
		return 0
	}
	if _, found := shard.items[key]; !found {
		return 0
	}
	delete(shard.items, key)
	return 1
}

// EraseIf removes every entry matching the predicate and returns the count.
func (shard *Shard[K, V]) EraseIf(predicate func(key K, value V) bool) int {
	shard.mu.Lock()
	defer shard.mu.Unlock()
	removed := 0
	for key, value := range shard.items {
		if predicate(key, value) {
			delete(shard.items, key)
			removed++
		}
	}
	return removed
}

// ForEach visits every entry in this shard under its lock.
func (shard *Shard[K, V]) ForEach(visit Visitor[K, V]) {
	shard.mu.Lock()
	defer shard.mu.Unlock()
	for key, value := range shard.items {
		visit(key, value)
	}
}

// ForEachCond visits entries until the visitor returns false.
// Reports whether the whole shard was visited.
func (shard *Shard[K, V]) ForEachCond(visit CondVisitor[K, V]) bool {
	shard.mu.Lock()
	defer shard.mu.Unlock()
	for key, value := range shard.items {
		if !visit(key, value) {
			return false
		}
	}
	return true
}

func (shard *Shard[K, V]) Len() int {
	shard.mu.Lock()
	defer shard.mu.Unlock()
	return len(shard.items)
}
