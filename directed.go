// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// Directed is a directed double-buffered channel: a read-only buffer, a
// write-only buffer, and a key capability that copies the write buffer
// into the read buffer between phases.
//
// Readers and the writer touch different buffers, so one barrier per
// cycle suffices, with the key holder flushing inside it.
type Directed[T any] struct {
	core
	read  T
	write T
	clone func(T) T
}

// NewDirected allocates a directed channel with the given initial buffer
// values. Flush copies by plain assignment; for payloads with reference
// semantics (slices, maps, pointers) use [NewDirectedClone] so readers
// never alias the write buffer.
func NewDirected[T any](read, write T) *Directed[T] {
	return &Directed[T]{core: newCore(), read: read, write: write}
}

// NewDirectedClone is [NewDirected] with an explicit clone function
// applied on every Flush.
func NewDirectedClone[T any](read, write T, clone func(T) T) *Directed[T] {
	return &Directed[T]{core: newCore(), read: read, write: write, clone: clone}
}

// Split consumes the channel and mints its token set: the reader, the
// writer, and the flush key. Panics on the second call.
func (c *Directed[T]) Split() (Reader[T], Writer[T], FlushKey[T]) {
	c.markSplit()
	return Reader[T]{c: c}, Writer[T]{c: c}, FlushKey[T]{c: c}
}

// Reader is a read capability of a [Directed] channel. Readers are freely
// copyable: they observe the read buffer and never mutate it, so fanning
// the capability out to several reading threads is safe.
type Reader[T any] struct {
	c *Directed[T]
}

// Ref returns a stable pointer to the read buffer. The referent must not
// be written through it.
func (r Reader[T]) Ref() *T {
	return &r.c.read
}

// Get returns a copy of the read buffer value.
func (r Reader[T]) Get() T {
	return r.c.read
}

// Writer is the unique write capability of a [Directed] channel.
type Writer[T any] struct {
	c *Directed[T]
}

// Ref returns a stable pointer to the write buffer.
func (w Writer[T]) Ref() *T {
	return &w.c.write
}

// Get returns a copy of the write buffer value.
func (w Writer[T]) Get() T {
	return w.c.write
}

// Set replaces the write buffer value.
func (w Writer[T]) Set(v T) {
	w.c.write = v
}

// FlushKey is the channel capability of a [Directed] channel: the right
// to publish the write buffer to the readers between phases.
type FlushKey[T any] struct {
	c *Directed[T]
}

// Flush copies the write buffer into the read buffer, using the clone
// function if the channel was built with one. It must run between phases,
// with no reader or writer access in flight.
func (k FlushKey[T]) Flush() {
	if k.c.clone != nil {
		k.c.read = k.c.clone(k.c.write)
		return
	}
	k.c.read = k.c.write
}

// Reclaim tears the channel down, returning the final read and write
// buffer values. Accepts every outstanding reader copy; panics if any
// token belongs to another channel.
func (k FlushKey[T]) Reclaim(w Writer[T], readers ...Reader[T]) (T, T) {
	if w.c != k.c {
		panic("phase: writer does not belong to this directed channel")
	}
	for _, r := range readers {
		if r.c != k.c {
			panic("phase: reader does not belong to this directed channel")
		}
	}
	return k.c.read, k.c.write
}
