// Package shared provides Ptr, a thread-safe mutable cell that several owners
// can hold at once.
//
// Every Ptr guards its value with its own sync.Mutex. Owners replace the value
// with Set and read it with Snapshot, which duplicates the value under the
// lock and returns the copy. A reader therefore never holds a live alias into
// the cell, and nothing it does after Snapshot returns can race with a writer.
//
// Duplication:
//
//	WithClone(fn)        – explicit clone function, highest priority.
//	T implements Cloner  – v.Clone() (linalg.Vector and linalg.Matrix do).
//	otherwise            – plain assignment, allowed for value kinds only.
//
// A slice, map, pointer, channel or interface T with neither a clone function
// nor a Clone method would make Snapshot return a live alias, so New panics
// with ErrNoClone instead. Struct types are copied by assignment; give them a
// Clone method when they carry slices or maps.
//
// Sharing:
//
//	p := shared.New(linalg.MustVector[linalg.D2](0, 1))
//	q := p // second handle, same slot, no copy of the vector
//
// The slot is released by the garbage collector once no handle is reachable.
//
// Blocking:
//
//	Set, Snapshot, Swap and Update block until the lock is free; there is no
//	timeout, cancellation or retry. Lock ordering across several cells is the
//	caller's responsibility.
package shared
