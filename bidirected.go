// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// Bidirected fuses two directed channels into a duplex pair: each
// endpoint reads the input buffer fed by its peer and writes the output
// buffer feeding its peer. One flush serves both directions, so one
// barrier per cycle suffices.
type Bidirected[A, B any] struct {
	core
	aRead  A // endpoint one's input, endpoint two's published output
	aWrite A // endpoint two's pending output
	bRead  B // endpoint two's input, endpoint one's published output
	bWrite B // endpoint one's pending output
	cloneA func(A) A
	cloneB func(B) B
}

// NewBidirected allocates a bidirected channel. aRead/aWrite seed the
// A-carrying direction (read by endpoint one), bRead/bWrite the
// B-carrying direction (read by endpoint two). Flush copies by plain
// assignment; use [NewBidirectedClone] for reference payloads.
func NewBidirected[A, B any](aRead, aWrite A, bRead, bWrite B) *Bidirected[A, B] {
	return &Bidirected[A, B]{
		core:   newCore(),
		aRead:  aRead,
		aWrite: aWrite,
		bRead:  bRead,
		bWrite: bWrite,
	}
}

// NewBidirectedClone is [NewBidirected] with explicit clone functions
// applied on every Flush.
func NewBidirectedClone[A, B any](aRead, aWrite A, bRead, bWrite B, cloneA func(A) A, cloneB func(B) B) *Bidirected[A, B] {
	c := NewBidirected(aRead, aWrite, bRead, bWrite)
	c.cloneA = cloneA
	c.cloneB = cloneB
	return c
}

// Split consumes the channel and mints its token set: the two duplex
// endpoints and the flush key. Panics on the second call.
func (c *Bidirected[A, B]) Split() (Duplex[A, B], Duplex[B, A], BiFlushKey[A, B]) {
	c.markSplit()
	one := Duplex[A, B]{owner: &c.core, in: &c.aRead, out: &c.bWrite}
	two := Duplex[B, A]{owner: &c.core, in: &c.bRead, out: &c.aWrite}
	return one, two, BiFlushKey[A, B]{c: c}
}

// Duplex is an endpoint capability of a [Bidirected] channel: a read
// reference to the input buffer and a write reference to the output
// buffer. The references are stable for the channel's lifetime.
type Duplex[I, O any] struct {
	owner *core
	in    *I
	out   *O
}

// In returns a stable pointer to the input buffer. The referent must not
// be written through it.
func (d Duplex[I, O]) In() *I {
	return d.in
}

// Out returns a stable pointer to the output buffer.
func (d Duplex[I, O]) Out() *O {
	return d.out
}

// Get returns a copy of the input buffer value.
func (d Duplex[I, O]) Get() I {
	return *d.in
}

// Set replaces the output buffer value.
func (d Duplex[I, O]) Set(v O) {
	*d.out = v
}

// BiFlushKey is the channel capability of a [Bidirected] channel.
type BiFlushKey[A, B any] struct {
	c *Bidirected[A, B]
}

// Flush publishes both pending outputs to their peers' input buffers.
// It must run between phases, with no endpoint access in flight.
func (k BiFlushKey[A, B]) Flush() {
	if k.c.cloneA != nil {
		k.c.aRead = k.c.cloneA(k.c.aWrite)
	} else {
		k.c.aRead = k.c.aWrite
	}
	if k.c.cloneB != nil {
		k.c.bRead = k.c.cloneB(k.c.bWrite)
	} else {
		k.c.bRead = k.c.bWrite
	}
}

// Reclaim tears the channel down, returning the final buffer values as
// (aRead, aWrite, bRead, bWrite). Panics if an endpoint belongs to
// another channel.
func (k BiFlushKey[A, B]) Reclaim(one Duplex[A, B], two Duplex[B, A]) (A, A, B, B) {
	if one.owner != &k.c.core || two.owner != &k.c.core {
		panic("phase: endpoints do not belong to this bidirected channel")
	}
	return k.c.aRead, k.c.aWrite, k.c.bRead, k.c.bWrite
}
