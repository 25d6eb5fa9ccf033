// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

// Barrier is the phase-separating synchronization point, injected by the
// host program. The library never implements one: any primitive whose
// Wait releases only after every participant of the phase has arrived,
// and whose release establishes a happens-before edge from all work done
// before the barrier to all work done after it, satisfies the contract.
// A thread-pool join, a cyclic barrier, or a scoped fork/join all qualify.
//
// Every repeating slot channel depends on a Barrier between its write
// window and its read window, and again before the next write window.
// The double-buffered channels need one Wait per cycle, with the key
// holder flushing inside it.
type Barrier interface {
	Wait()
}

// BarrierFunc adapts a function to the [Barrier] interface.
type BarrierFunc func()

// Wait calls f.
func (f BarrierFunc) Wait() {
	f()
}
