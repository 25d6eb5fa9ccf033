// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// SPSC is a repeating single-producer single-consumer phase channel:
// one slot, one sender capability, one receiver capability, strict
// write→barrier→read alternation.
type SPSC[T any] struct {
	core
	cell cell[T]
}

// NewSPSC allocates a single-producer single-consumer channel.
// The slot storage is part of this one allocation; no allocation happens
// after construction.
func NewSPSC[T any]() *SPSC[T] {
	return &SPSC[T]{core: newCore()}
}

// Split consumes the channel and mints its token set: exactly one sender
// and one receiver. Panics on the second call.
func (c *SPSC[T]) Split() (Sender[T], Receiver[T]) {
	c.markSplit()
	return Sender[T]{c: &c.cell}, Receiver[T]{c: &c.cell}
}

// Sender is the write capability of an [SPSC] channel for one phase.
// It must be moved to the sending thread before threads start and never
// copied: two goroutines holding sender capabilities for the same slot is
// a data race the type system cannot see.
type Sender[T any] struct {
	c *cell[T]
}

// Send publishes v for the current phase and returns the renewed sender
// capability for the next phase. An unconsumed previous value is
// overwritten; the slot never queues.
//
// The matching Recv must be separated from this call by the host barrier.
func (tx Sender[T]) Send(v T) Sender[T] {
	tx.c.put(v)
	return tx
}

// Receiver is the read capability of an [SPSC] channel for one phase.
type Receiver[T any] struct {
	c *cell[T]
}

// Recv moves the published value out of the slot, returning the slot to
// empty, and yields the renewed receiver capability for the next phase.
// Panics if the slot is empty (send skipped, or barrier misplaced on the
// same goroutine; a cross-goroutine misplaced barrier is a data race).
func (rx Receiver[T]) Recv() (T, Receiver[T]) {
	return rx.c.take(), rx
}

// Ready reports whether the slot holds an unconsumed value.
// Only meaningful on the receiving side of the barrier.
func (rx Receiver[T]) Ready() bool {
	return rx.c.full
}
