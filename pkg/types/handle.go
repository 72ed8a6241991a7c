package types

import (
	"sync/atomic"
)

// Releasable defines reference-counted shared ownership for map values.
type Releasable interface {
	Release() bool
	RefCount() int64
	IncRefCount() int64
	DecRefCount() int64
	IsDoomed() bool
	MarkAsDoomed() bool
}

// Handle is a shared-ownership handle to a single element. Copies of a
// Handle share the element and its refcount, so a copy obtained from a map
// lookup keeps the element alive after the entry has been erased. The
// element is considered released once the last acquired copy is released.
type Handle[T any] struct {
	state *handleState[T]
}

type handleState[T any] struct {
	elem     T
	refCount atomic.Int64
	doomed   atomic.Bool
	onFinal  func(elem T)
}

// NewHandle wraps elem with an initial refcount of 1. onFinal, if not nil,
// runs exactly once when the last reference is released.
func NewHandle[T any](elem T, onFinal func(elem T)) Handle[T] {
	h := Handle[T]{state: &handleState[T]{elem: elem, onFinal: onFinal}}
	h.state.refCount.Store(1)
	return h
}

// Value returns the referenced element. Valid while at least one reference
// is held.
func (h Handle[T]) Value() T {
	return h.state.elem
}

func (h Handle[T]) IsNil() bool {
	return h.state == nil
}

// Acquire registers one more owner and returns the same handle.
func (h Handle[T]) Acquire() Handle[T] {
	h.IncRefCount()
	return h
}

// Release drops one owner; reports true when this call released the last
// reference.
func (h Handle[T]) Release() bool {
	if refs := h.DecRefCount(); refs == 0 {
		h.MarkAsDoomed()
		if h.state.onFinal != nil {
			h.state.onFinal(h.state.elem)
		}
		return true
	}
	return false
}

func (h Handle[T]) RefCount() int64 {
	return h.state.refCount.Load()
}

func (h Handle[T]) IncRefCount() int64 {
	return h.state.refCount.Add(1)
}

func (h Handle[T]) DecRefCount() int64 {
	return h.state.refCount.Add(-1)
}

// IsDoomed reports whether the last reference has already been released.
func (h Handle[T]) IsDoomed() bool {
	return h.state.doomed.Load()
}

// MarkAsDoomed flags the element as released; reports true on the first call.
func (h Handle[T]) MarkAsDoomed() bool {
	return h.state.doomed.CompareAndSwap(false, true)
}
