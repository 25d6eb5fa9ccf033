// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import "code.hybscloud.com/atomix"

// Oneshot is the one-shot point-to-point channel: the sender capability is
// consumed permanently by Send and the receiver capability by Recv, so a
// second transfer cannot be expressed.
type Oneshot[T any] struct {
	core
	cell cell[T]
	sent atomix.Uint32
	rcvd atomix.Uint32
}

// NewOneshot allocates a one-shot channel.
func NewOneshot[T any]() *Oneshot[T] {
	return &Oneshot[T]{core: newCore()}
}

// Split consumes the channel and mints the one-shot sender/receiver pair.
// Panics on the second call.
func (c *Oneshot[T]) Split() (OneshotSender[T], OneshotReceiver[T]) {
	c.markSplit()
	return OneshotSender[T]{c: c}, OneshotReceiver[T]{c: c}
}

// OneshotSender is the single-use write capability of a [Oneshot] channel.
type OneshotSender[T any] struct {
	c *Oneshot[T]
}

// Send publishes v and consumes the capability. Reuse panics, including
// reuse through a copied token: consumption is tracked in the channel,
// following the affine one-shot convention of kont suspensions.
func (tx OneshotSender[T]) Send(v T) {
	if !tx.c.sent.CompareAndSwap(0, 1) {
		panic("phase: oneshot sender already consumed")
	}
	tx.c.cell.put(v)
}

// OneshotReceiver is the single-use read capability of a [Oneshot] channel.
type OneshotReceiver[T any] struct {
	c *Oneshot[T]
}

// Recv moves the value out and consumes the capability. Reuse panics.
// The matching Send must be separated from this call by the host barrier.
func (rx OneshotReceiver[T]) Recv() T {
	if !rx.c.rcvd.CompareAndSwap(0, 1) {
		panic("phase: oneshot receiver already consumed")
	}
	return rx.c.cell.take()
}
