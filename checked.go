// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// CheckedSPSC is the runtime-checked rendition of [SPSC]: the hand-off
// runs through a lock-free bounded queue of capacity one, so write and
// read carry their own acquire/release pairing and no external barrier is
// required. The cost is the per-transfer synchronization the unchecked
// shapes exist to avoid; the gain is that the two protocol hazards become
// observable errors instead of races: a double send and a recv before the
// matching send both return [code.hybscloud.com/iox.ErrWouldBlock].
type CheckedSPSC[T any] struct {
	core
	q lfq.SPSC[T]
}

// NewCheckedSPSC allocates a checked channel.
// Capacity 1 keeps the single-item contract: a slot, not a queue.
func NewCheckedSPSC[T any]() *CheckedSPSC[T] {
	c := &CheckedSPSC[T]{core: newCore()}
	c.q.Init(1)
	return c
}

// Split consumes the channel and mints the checked sender/receiver pair.
// Panics on the second call.
func (c *CheckedSPSC[T]) Split() (CheckedSender[T], CheckedReceiver[T]) {
	c.markSplit()
	return CheckedSender[T]{c: c}, CheckedReceiver[T]{c: c}
}

// CheckedSender is the write capability of a [CheckedSPSC] channel.
type CheckedSender[T any] struct {
	c *CheckedSPSC[T]
}

// Send publishes v. Non-blocking: returns iox.ErrWouldBlock if the slot
// still holds an unconsumed value (a double send this phase).
func (tx CheckedSender[T]) Send(v T) error {
	return tx.c.q.Enqueue(&v)
}

// SendWait blocks until the slot is free, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func (tx CheckedSender[T]) SendWait(v T) {
	var bo iox.Backoff
	for tx.c.q.Enqueue(&v) != nil {
		bo.Wait()
	}
}

// CheckedReceiver is the read capability of a [CheckedSPSC] channel.
type CheckedReceiver[T any] struct {
	c *CheckedSPSC[T]
}

// Recv moves the value out. Non-blocking: returns iox.ErrWouldBlock if
// the matching send has not happened yet.
func (rx CheckedReceiver[T]) Recv() (T, error) {
	return rx.c.q.Dequeue()
}

// RecvWait blocks until a value arrives, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func (rx CheckedReceiver[T]) RecvWait() T {
	var bo iox.Backoff
	for {
		v, err := rx.c.q.Dequeue()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}
