// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// Flusher is the common capability of the double-buffered channel keys:
// [SwapKey], [FlushKey] and [BiFlushKey] all publish pending buffers when
// flushed. The interface lets one barrier holder flush a heterogeneous
// set of channels without knowing their payload types.
type Flusher interface {
	Flush()
}

// FlushAll returns a commit action that flushes every key in order.
// Intended as the commit argument of [Run]: the driver calls it between
// phases, when no participant holds a buffer open.
func FlushAll(keys ...Flusher) func() {
	return func() {
		for _, k := range keys {
			k.Flush()
		}
	}
}
