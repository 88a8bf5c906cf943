// SPDX-License-Identifier: MIT

package shared

import (
	"fmt"
	"reflect"
	"sync"
)

// Cloner is implemented by values that know how to duplicate themselves.
// Snapshot uses it when no WithClone function was supplied.
type Cloner[T any] interface {
	Clone() T
}

// Option configures a Ptr before first use.
type Option[T any] func(p *Ptr[T])

// WithClone sets the function Snapshot uses to duplicate the stored value.
// It overrides a Clone method on T.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(p *Ptr[T]) { p.clone = fn }
}

// Ptr is a shared, mutually exclusive slot holding one value of type T.
//
// Handles are *Ptr[T]: copying the pointer shares the slot without copying T,
// and the slot lives as long as any handle is reachable. Every access takes
// the slot's own mutex; there is no global lock and no read/write split.
//
// The zero value holds the zero T and is ready to use. A Ptr must not be
// copied after first use.
type Ptr[T any] struct {
	mu    sync.Mutex // guards val
	val   T
	clone func(T) T // nil → Cloner[T] or plain assignment
}

// New wraps v in a fresh slot and returns its first handle.
//
// New panics with ErrNoClone when T is a reference kind (slice, map, pointer,
// channel, interface) that implements no Clone() T and no WithClone option is
// given: plain assignment would let Snapshot return a live alias.
// Complexity: O(1).
func New[T any](v T, opts ...Option[T]) *Ptr[T] {
	p := &Ptr[T]{val: v}
	for _, opt := range opts {
		opt(p)
	}
	if p.clone == nil && aliasing[T]() {
		panic(fmt.Errorf("New[%v]: %w", reflect.TypeFor[T](), ErrNoClone))
	}

	return p
}

// Set replaces the stored value with v and drops the old one.
// It blocks until the lock is free. Set takes ownership of v: the caller must
// not mutate v through aliases afterwards.
func (p *Ptr[T]) Set(v T) {
	p.mu.Lock()
	p.val = v
	p.mu.Unlock()
}

// Snapshot returns an independent copy of the stored value.
// The lock is held only while duplicating; mutating the returned copy never
// affects the slot or later snapshots.
func (p *Ptr[T]) Snapshot() T {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.dup(p.val)
}

// Swap stores v and returns the previous value. The previous value is no
// longer referenced by the slot, so it is returned without cloning.
func (p *Ptr[T]) Swap(v T) (old T) {
	p.mu.Lock()
	old, p.val = p.val, v
	p.mu.Unlock()

	return old
}

// Update replaces the stored value with fn(current) while holding the lock,
// so no other Set, Snapshot or Update can interleave. fn must not call back
// into p.
func (p *Ptr[T]) Update(fn func(T) T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.val = fn(p.val)
}

// dup duplicates v. Caller must hold p.mu.
// A zero-value Ptr of a reference kind without a clone source panics here,
// the same way New would have.
func (p *Ptr[T]) dup(v T) T {
	if p.clone != nil {
		return p.clone(v)
	}
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if aliasing[T]() {
		panic(fmt.Errorf("Snapshot[%v]: %w", reflect.TypeFor[T](), ErrNoClone))
	}

	return v
}

// aliasing reports whether assigning a T shares mutable storage and T has no
// Clone() T method to break the share. Only the top-level kind is inspected;
// a struct with slice fields needs its own Clone.
func aliasing[T any]() bool {
	t := reflect.TypeFor[T]()
	if t.Implements(reflect.TypeFor[Cloner[T]]()) {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
