package metrics

import (
	"github.com/Borislavv/go-sharded-map/pkg/sharded"
)

// Instrumented wraps a sharded map and feeds per-operation counters into a
// Meter. Operations not represented here (ForEach, Copy, WalkShards) are
// reachable through Map().
type Instrumented[K comparable, V any] struct {
	smap  *sharded.Map[K, V]
	meter Meter
}

func NewInstrumented[K comparable, V any](smap *sharded.Map[K, V], meter Meter) *Instrumented[K, V] {
	return &Instrumented[K, V]{smap: smap, meter: meter}
}

func (i *Instrumented[K, V]) Map() *sharded.Map[K, V] {
	return i.smap
}

func (i *Instrumented[K, V]) TryEmplace(key K, construct func() V) (V, bool) {
	value, inserted := i.smap.TryEmplace(key, construct)
	i.meter.IncEmplace(inserted)
	return value, inserted
}

func (i *Instrumented[K, V]) Find(key K) (V, bool) {
	value, found := i.smap.Find(key)
	i.meter.IncFind(found)
	return value, found
}

func (i *Instrumented[K, V]) Erase(key K) int {
	removed := i.smap.Erase(key)
	i.meter.IncErase(removed)
	return removed
}

func (i *Instrumented[K, V]) EraseIf(predicate func(key K, value V) bool) int {
	removed := i.smap.EraseIf(predicate)
	i.meter.IncErase(removed)
	return removed
}

func (i *Instrumented[K, V]) EraseOne(predicate func(key K, value V) bool) int {
	removed := i.smap.EraseOne(predicate)
	i.meter.IncErase(removed)
	return removed
}
