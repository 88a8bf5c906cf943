// SPDX-License-Identifier: MIT

package shared_test

import (
	"testing"

	"github.com/katalvlaran/fixdim/linalg"
	"github.com/katalvlaran/fixdim/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box is a reference-carrying type with a Clone method.
type box struct{ items []int }

func (b box) Clone() box { return box{items: append([]int(nil), b.items...)} }

func TestPtr_SetThenSnapshot(t *testing.T) {
	t.Parallel()

	p := shared.New(1)
	assert.Equal(t, 1, p.Snapshot())

	p.Set(7)
	assert.Equal(t, 7, p.Snapshot())
	assert.Equal(t, 7, p.Snapshot(), "snapshot does not consume the value")
}

func TestPtr_ZeroValueUsable(t *testing.T) {
	t.Parallel()

	var p shared.Ptr[string]
	assert.Equal(t, "", p.Snapshot())
	p.Set("x")
	assert.Equal(t, "x", p.Snapshot())
}

func TestPtr_SnapshotIsolation_Cloner(t *testing.T) {
	t.Parallel()

	p := shared.New(box{items: []int{1, 2, 3}})
	snap := p.Snapshot()
	snap.items[0] = 100 // mutate the copy

	assert.Equal(t, []int{1, 2, 3}, p.Snapshot().items)
}

func TestPtr_SnapshotIsolation_WithClone(t *testing.T) {
	t.Parallel()

	calls := 0
	p := shared.New([]int{1, 2}, shared.WithClone(func(s []int) []int {
		calls++
		return append([]int(nil), s...)
	}))

	snap := p.Snapshot()
	snap[1] = -1
	assert.Equal(t, []int{1, 2}, p.Snapshot())
	assert.Equal(t, 2, calls)
}

func TestPtr_WithCloneOverridesCloneMethod(t *testing.T) {
	t.Parallel()

	p := shared.New(box{items: []int{1}}, shared.WithClone(func(b box) box {
		return box{items: []int{42}}
	}))
	assert.Equal(t, []int{42}, p.Snapshot().items)
}

func TestPtr_HoldsLinalgValues(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector[linalg.D2](0, 1)
	p := shared.New(v)

	snap := p.Snapshot()
	require.True(t, snap.Equal(v))

	w := linalg.MustVector[linalg.D2](3, 4)
	p.Set(w)
	assert.True(t, p.Snapshot().Equal(w))
	assert.True(t, snap.Equal(v), "earlier snapshot unaffected by Set")
}

func TestPtr_SharedHandlesSeeSameSlot(t *testing.T) {
	t.Parallel()

	p := shared.New(box{items: []int{1}})
	q := p // second handle

	q.Set(box{items: []int{2}})
	assert.Equal(t, []int{2}, p.Snapshot().items)
}

func TestPtr_Swap(t *testing.T) {
	t.Parallel()

	p := shared.New("a")
	assert.Equal(t, "a", p.Swap("b"))
	assert.Equal(t, "b", p.Swap("c"))
	assert.Equal(t, "c", p.Snapshot())
}

func TestPtr_Update(t *testing.T) {
	t.Parallel()

	m := linalg.Identity[linalg.D2]()
	p := shared.New(m)
	p.Update(func(cur linalg.Matrix[linalg.D2, linalg.D2]) linalg.Matrix[linalg.D2, linalg.D2] {
		return cur.Scale(3)
	})

	assert.True(t, p.Snapshot().Equal(m.Scale(3)))
}

// requireNoClonePanic runs fn and expects it to panic with ErrNoClone.
func requireNoClonePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %T is not an error", r)
		require.ErrorIs(t, err, shared.ErrNoClone)
	}()
	fn()
}

func TestNew_ReferenceKindWithoutClone_Panics(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector[linalg.D2](1, 2)
	requireNoClonePanic(t, func() { shared.New([]int{1, 2}) })
	requireNoClonePanic(t, func() { shared.New(map[string]int{"a": 1}) })
	requireNoClonePanic(t, func() { shared.New(&v) })
	requireNoClonePanic(t, func() { shared.New[any](1) })
}

func TestPtr_ZeroValueReferenceKind_SnapshotPanics(t *testing.T) {
	t.Parallel()

	var p shared.Ptr[[]int]
	p.Set([]int{1})
	requireNoClonePanic(t, func() { _ = p.Snapshot() })
}

func TestPtr_SliceSnapshotWithClone_IsIndependent(t *testing.T) {
	t.Parallel()

	p := shared.New([]int{1, 2}, shared.WithClone(func(s []int) []int {
		return append([]int(nil), s...)
	}))
	snap := p.Snapshot()
	snap[0] = 99
	assert.Equal(t, []int{1, 2}, p.Snapshot())
}
