// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// cell is the single-item storage underlying the slot channel shapes.
// A cell is either empty or holds one value written by the unique sender
// capability for the current phase.
//
// All accesses are ordinary loads and stores. The memory-visibility
// contract is external: a write in phase N is visible to readers in the
// following read window only because the host barrier orders the write
// before the read. The cell itself carries no fence, lock, or atomic.
type cell[T any] struct {
	value T
	full  bool
}

// put publishes v. Overwrites an unconsumed value; a cell never queues.
func (c *cell[T]) put(v T) {
	c.value = v
	c.full = true
}

// take moves the value out, returning the cell to empty.
// Panics if the cell is empty: the token proves permission, and an empty
// cell under a correctly placed barrier means a send was skipped.
func (c *cell[T]) take() T {
	if !c.full {
		panic("phase: recv on empty slot")
	}
	v := c.value
	var zero T
	c.value = zero
	c.full = false
	return v
}

// peek returns the published value without consuming it.
// Used by the broadcast shapes: a published value is immutable shared
// data until the next write overwrites it.
func (c *cell[T]) peek() T {
	if !c.full {
		panic("phase: recv on empty slot")
	}
	return c.value
}
