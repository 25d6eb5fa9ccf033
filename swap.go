// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// Swap is an undirected double-buffered channel: two buffers, two port
// capabilities with stable references, and one key capability that
// exchanges the buffer contents between phases.
//
// Because each endpoint owns a whole buffer, a compute phase may both read
// and write through its port; one barrier per cycle suffices, with the key
// holder flushing inside it. This is the pattern the single-slot shapes
// cannot express without a second barrier.
type Swap[T any] struct {
	core
	a, b T
}

// NewSwap allocates a swap channel with the given initial buffer values.
func NewSwap[T any](a, b T) *Swap[T] {
	return &Swap[T]{core: newCore(), a: a, b: b}
}

// NewSwapEqual allocates a swap channel with both buffers initialised to v.
func NewSwapEqual[T any](v T) *Swap[T] {
	return NewSwap(v, v)
}

// Split consumes the channel and mints its token set: one port per
// endpoint and the swap key. Panics on the second call.
func (c *Swap[T]) Split() (Port[T], Port[T], SwapKey[T]) {
	c.markSplit()
	return Port[T]{c: c}, Port[T]{c: c, second: true}, SwapKey[T]{c: c}
}

// Port is an endpoint capability of a [Swap] channel.
type Port[T any] struct {
	c      *Swap[T]
	second bool
}

// Ref returns a stable pointer to this port's buffer. The pointer stays
// valid for the channel's lifetime; Flush exchanges the contents behind
// the two ports, not the pointers. The buffer may be read and written
// freely during the compute phase and must not be touched while the key
// holder flushes.
func (p Port[T]) Ref() *T {
	if p.second {
		return &p.c.b
	}
	return &p.c.a
}

// Get returns a copy of this port's buffer value.
func (p Port[T]) Get() T {
	return *p.Ref()
}

// Set replaces this port's buffer value.
func (p Port[T]) Set(v T) {
	*p.Ref() = v
}

// SwapKey is the channel capability of a [Swap] channel: the right to
// exchange the two buffers between phases.
type SwapKey[T any] struct {
	c *Swap[T]
}

// Flush exchanges the two buffer contents. It must run between phases,
// with no port access in flight; the host barrier on each side of the
// flush is what makes the exchange visible to both endpoints.
func (k SwapKey[T]) Flush() {
	k.c.a, k.c.b = k.c.b, k.c.a
}

// Reclaim tears the channel down, returning the final buffer values in
// port order. Panics if the ports do not belong to this channel or are
// two copies of the same port.
func (k SwapKey[T]) Reclaim(p1, p2 Port[T]) (T, T) {
	if p1.c != k.c || p2.c != k.c || p1.second == p2.second {
		panic("phase: ports do not belong to this swap channel")
	}
	if p1.second {
		return k.c.b, k.c.a
	}
	return k.c.a, k.c.b
}
