package sharded

import (
	"sync/atomic"
)

// DefaultShardCount is used when the caller passes a zero shard count.
const DefaultShardCount uint64 = 1024

// Map is a sharded, lock-partitioned map. Every key is routed to exactly one
// shard via hasher(key) % shardCount; operations on keys in different shards
// never contend. Cross-shard operations (EraseIf, EraseOne, ForEach, Copy)
// take one shard lock at a time, so they are never a single consistent
// snapshot under concurrent writers.
type Map[K comparable, V any] struct {
	shards []*Shard[K, V]
	hasher Hasher[K]
	length atomic.Int64 // approximate, relaxed; converges once mutations quiesce
}

// NewMap builds a map with a fixed shard count (never resized afterwards).
// initLenPerShard is a capacity hint for each shard's lazily allocated storage.
func NewMap[K comparable, V any](hasher Hasher[K], shardCount uint64, initLenPerShard int) *Map[K, V] {
	if shardCount == 0 {
		shardCount = DefaultShardCount
	}
	m := &Map[K, V]{
		shards: make([]*Shard[K, V], shardCount),
		hasher: hasher,
	}
	for id := uint64(0); id < shardCount; id++ {
		m.shards[id] = NewShard[K, V](id, initLenPerShard)
	}
	return m
}

// ShardIndex is the routing function: pure, deterministic and fixed for the
// lifetime of the map.
func (smap *Map[K, V]) ShardIndex(key K) uint64 {
	return smap.hasher(key) % uint64(len(smap.shards))
}

func (smap *Map[K, V]) ShardCount() uint64 {
	return uint64(len(smap.shards))
}

func (smap *Map[K, V]) Shard(key K) *Shard[K, V] {
	return smap.shards[smap.ShardIndex(key)]
}

// TryEmplace inserts into the owning shard if the key is absent and bumps the
// approximate length counter on actual insertion.
func (smap *Map[K, V]) TryEmplace(key K, construct func() V) (value V, inserted bool) {
	value, inserted = smap.Shard(key).TryEmplace(key, construct)
	if inserted {
		smap.length.Add(1)
	}
	return value, inserted
}

func (smap *Map[K, V]) Find(key K) (value V, found bool) {
	return smap.Shard(key).Find(key)
}

func (smap *Map[K, V]) Erase(key K) int {
	removed := smap.Shard(key).Erase(key)
	if removed > 0 {
		smap.length.Add(-int64(removed))
	}
	return removed
}

// EraseIf applies the predicate to every shard (a match may be by value, not
// key, so no shard can be skipped) and returns the total removed. Each
// shard's removal is atomic; the whole operation is not.
func (smap *Map[K, V]) EraseIf(predicate func(key K, value V) bool) int {
	total := 0
	for _, shard := range smap.shards {
		removed := shard.EraseIf(predicate)
		if removed > 0 {
			smap.length.Add(-int64(removed))
			total += removed
		}
	}
	return total
}

// EraseOne scans shards in index order and stops at the first shard where the
// predicate removed at least one entry. This is first-shard-wins, not
// "globally first match": iteration order inside a shard is unspecified.
func (smap *Map[K, V]) EraseOne(predicate func(key K, value V) bool) int {
	for _, shard := range smap.shards {
		if removed := shard.EraseIf(predicate); removed > 0 {
			smap.length.Add(-int64(removed))
			return removed
		}
	}
	return 0
}

// ForEach visits every entry, one shard lock at a time, in shard index order.
func (smap *Map[K, V]) ForEach(visit Visitor[K, V]) {
	for _, shard := range smap.shards {
		shard.ForEach(visit)
	}
}

// ForEachCond visits entries until the visitor returns false; remaining
// shards are not visited. Reports whether the visit ran to completion.
func (smap *Map[K, V]) ForEachCond(visit CondVisitor[K, V]) bool {
	for _, shard := range smap.shards {
		if !shard.ForEachCond(visit) {
			return false
		}
	}
	return true
}

// WalkShards hands every shard to fn in index order. Locking is up to the
// shard operations fn invokes.
func (smap *Map[K, V]) WalkShards(fn func(id uint64, shard *Shard[K, V])) {
	for id, shard := range smap.shards {
		fn(uint64(id), shard)
	}
}

// Copy snapshots every value matching the predicate (nil means all) into a
// fresh slice. Capacity comes from the approximate counter; drift only costs
// a regrow or some slack, never correctness.
func (smap *Map[K, V]) Copy(predicate func(value V) bool) []V {
	hint := smap.length.Load()
	if hint < 0 {
		hint = 0
	}
	ret := make([]V, 0, hint)
	for _, shard := range smap.shards {
		shard.ForEach(func(_ K, value V) {
			if predicate == nil || predicate(value) {
				ret = append(ret, value)
			}
		})
	}
	return ret
}

// Len is the approximate entry count: advisory under concurrent mutation,
// exact once all mutations have quiesced.
func (smap *Map[K, V]) Len() int64 {
	return smap.length.Load()
}
