// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// MPSC is a repeating reduction channel: K sub-slots, one per contributor,
// and a single collector that gathers all K values each phase.
//
// The gathered sequence is indexed by contributor identity, never by
// arrival order — contributors run independently and their completion
// order is not observable.
type MPSC[T any] struct {
	core
	cells []cell[T]
	buf   []T
}

// NewMPSC allocates a reduction channel for k contributors.
// The sub-slots and the gather buffer are allocated here, once.
// Panics if k < 1.
func NewMPSC[T any](k int) *MPSC[T] {
	if k < 1 {
		panic("phase: contributor count must be at least 1")
	}
	return &MPSC[T]{
		core:  newCore(),
		cells: make([]cell[T], k),
		buf:   make([]T, k),
	}
}

// Split consumes the channel and mints exactly k contributor tokens, one
// per sending thread, plus the collector. Panics on the second call.
func (c *MPSC[T]) Split() ([]Contributor[T], Collector[T]) {
	c.markSplit()
	txs := make([]Contributor[T], len(c.cells))
	for i := range txs {
		txs[i] = Contributor[T]{c: &c.cells[i], idx: i}
	}
	return txs, Collector[T]{c: c}
}

// Contributor is the write capability for one sub-slot of an [MPSC]
// channel. Contributors write adjacent cells during the communicate
// window; the window is exactly one store per contributor, so the false
// sharing is bounded to that single store.
type Contributor[T any] struct {
	c   *cell[T]
	idx int
}

// Index returns the contributor identity: the position this contributor's
// value occupies in every gathered sequence.
func (tx Contributor[T]) Index() int {
	return tx.idx
}

// Send publishes v into this contributor's sub-slot for the current phase
// and returns the renewed capability for the next phase.
func (tx Contributor[T]) Send(v T) Contributor[T] {
	tx.c.put(v)
	return tx
}

// Collector is the read capability of an [MPSC] channel.
type Collector[T any] struct {
	c *MPSC[T]
}

// Gather moves all K values out of the sub-slots, returning them indexed
// by contributor identity, and yields the renewed capability for the next
// phase. The returned slice is owned by the channel and reused on the
// next Gather.
//
// Panics if any sub-slot is empty: under a correctly placed barrier that
// means a contributor skipped its send.
func (rx Collector[T]) Gather() ([]T, Collector[T]) {
	for i := range rx.c.cells {
		rx.c.buf[i] = rx.c.cells[i].take()
	}
	return rx.c.buf, rx
}
