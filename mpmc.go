// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// MPMC is a repeating all-exchange channel: K participants, each the
// unique writer of its own broadcast slot and a reader of every slot.
// One phase moves the full K-vector to every participant (all-gather).
//
// Like [SPMC], the published values are shared, not moved: T must
// tolerate being observed by all participants.
type MPMC[T any] struct {
	core
	cells []cell[T]
	bufs  [][]T
}

// NewMPMC allocates an all-exchange channel for k participants.
// The slots and one gather buffer per participant are allocated here,
// once. Panics if k < 1.
func NewMPMC[T any](k int) *MPMC[T] {
	if k < 1 {
		panic("phase: participant count must be at least 1")
	}
	c := &MPMC[T]{
		core:  newCore(),
		cells: make([]cell[T], k),
		bufs:  make([][]T, k),
	}
	for i := range c.bufs {
		c.bufs[i] = make([]T, k)
	}
	return c
}

// Split consumes the channel and mints exactly one exchanger per
// participant. Panics on the second call.
func (c *MPMC[T]) Split() []Exchanger[T] {
	c.markSplit()
	xs := make([]Exchanger[T], len(c.cells))
	for i := range xs {
		xs[i] = Exchanger[T]{c: c, idx: i}
	}
	return xs
}

// Exchanger is the pre-phase form of an [MPMC] participant capability:
// it proves the right to publish this participant's contribution.
type Exchanger[T any] struct {
	c   *MPMC[T]
	idx int
}

// Index returns the participant identity.
func (x Exchanger[T]) Index() int {
	return x.idx
}

// Send publishes this participant's contribution for the current phase
// and yields the post-phase form of the capability. The Gather on the
// returned token must be separated from the last Send of the phase by the
// host barrier.
func (x Exchanger[T]) Send(v T) Gatherer[T] {
	x.c.cells[x.idx].put(v)
	return Gatherer[T](x)
}

// Gatherer is the post-phase form of an [MPMC] participant capability:
// it proves that this participant has published and may now read the
// phase vector.
type Gatherer[T any] struct {
	c   *MPMC[T]
	idx int
}

// Index returns the participant identity.
func (g Gatherer[T]) Index() int {
	return g.idx
}

// Gather reads all K contributions, indexed by participant identity with
// this participant's own value at Index, and yields the pre-phase
// capability for the next cycle. Published values are not consumed: every
// participant reads the same phase vector. The returned slice belongs to
// this participant and is reused on its next Gather.
//
// Panics if any slot has never been published.
func (g Gatherer[T]) Gather() ([]T, Exchanger[T]) {
	buf := g.c.bufs[g.idx]
	for i := range g.c.cells {
		buf[i] = g.c.cells[i].peek()
	}
	return buf, Exchanger[T](g)
}
