// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// SPMC is a repeating single-producer broadcast channel: one slot, one
// publisher capability, K subscriber capabilities that each read the same
// published value.
//
// Broadcast reads share the value instead of moving it: T must tolerate
// being observed by multiple parties (no move-on-read). For payloads with
// reference semantics every subscriber sees the same referent.
type SPMC[T any] struct {
	core
	cell cell[T]
	k    int
}

// NewSPMC allocates a broadcast channel for k subscribers.
// Panics if k < 1.
func NewSPMC[T any](k int) *SPMC[T] {
	if k < 1 {
		panic("phase: subscriber count must be at least 1")
	}
	return &SPMC[T]{core: newCore(), k: k}
}

// Split consumes the channel and mints one publisher and exactly k
// subscribers, one per intended reading thread. Panics on the second call.
func (c *SPMC[T]) Split() (Publisher[T], []Subscriber[T]) {
	c.markSplit()
	subs := make([]Subscriber[T], c.k)
	for i := range subs {
		subs[i] = Subscriber[T]{c: &c.cell}
	}
	return Publisher[T]{c: &c.cell}, subs
}

// Publisher is the unique write capability of an [SPMC] channel.
type Publisher[T any] struct {
	c *cell[T]
}

// Send publishes v for the current phase and returns the renewed publisher
// capability. The published value is immutable shared data until the next
// Send overwrites it; all subscriber reads must be separated from this
// call by the host barrier.
func (tx Publisher[T]) Send(v T) Publisher[T] {
	tx.c.put(v)
	return tx
}

// Subscriber is a shared-read capability of an [SPMC] channel.
// Unlike the consuming tokens, subscribers are freely copyable: a
// broadcast read does not consume, so duplicating the capability cannot
// violate the slot invariant.
type Subscriber[T any] struct {
	c *cell[T]
}

// Recv returns the value published this phase without consuming it.
// Every subscriber observes the identical value. Panics if nothing has
// been published yet.
func (rx Subscriber[T]) Recv() T {
	return rx.c.peek()
}

// Ready reports whether a published value is available.
func (rx Subscriber[T]) Ready() bool {
	return rx.c.full
}
