// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package phase provides fixed-capacity, single-item channels guarded by
// capability tokens, for programs that alternate between a compute phase
// (threads run independently) and a communicate phase (each thread moves
// exactly one value per channel).
//
// Possession of a token proves the right to perform one operation on one
// channel for the current phase; the operation consumes the token and, on
// repeating shapes, renews it for the next phase. The operations
// themselves are plain, fence-free memory accesses — no atomics, no
// locks, no per-transfer fences. The one synchronization point is the
// host-supplied [Barrier] separating phases.
//
// # Architecture
//
//   - Slots: single-item storage cells written by exactly one sender per
//     phase; the host barrier supplies the one fence per phase.
//   - Shapes: [SPSC] and [Oneshot] point-to-point, [SPMC] broadcast,
//     [MPSC] reduction (gathered by sender identity, never arrival
//     order), [MPMC] all-exchange. [Swap], [Directed] and [Bidirected]
//     are double-buffered: stable port references plus a key token whose
//     Flush publishes the pending buffers between phases.
//   - Split: construction allocates once; Split consumes the channel and
//     mints exactly the token set of the shape. No further tokens can be
//     minted, and Split panics on reuse.
//   - Checked: [CheckedSPSC] trades the zero-cost contract for internal
//     acquire/release ordering via [code.hybscloud.com/lfq], turning
//     double-send and recv-before-send into
//     [code.hybscloud.com/iox.ErrWouldBlock] instead of races.
//
// # Phase contract
//
// A repeating slot shape needs a barrier between its write window and
// its read window, and again before the next write window. The
// double-buffered shapes need one barrier per cycle, with the key
// holder flushing inside it. A read whose matching write is not ordered
// by the barrier is a data race: tokens prove permission, not timing.
//
// # Integration
//
//   - Protocols: participants are [code.hybscloud.com/kont] computations;
//     [Await] marks a phase boundary. Cont-world [AwaitThen], [AwaitBind],
//     [Defer] and [Loop]; Expr-world [ExprAwaitThen], [ExprAwaitBind],
//     [ExprDefer] and [ExprLoop]; bridge via [Reify] and [Reflect].
//   - Blocking: [Exec] and [ExecError] run one participant, waiting in
//     the injected [Barrier] at every boundary.
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError])
//     evaluate one boundary at a time for event-loop hosts.
//   - Deterministic: [Run] and [RunError] interleave all participants on
//     the calling goroutine, running a commit action (for example
//     [FlushAll]) between phases. No goroutines are spawned.
//
// # Example
//
//	c := phase.NewSPSC[int]()
//	tx, rx := c.Split()
//	sender := phase.Defer(func() kont.Eff[int] {
//		tx = tx.Send(42)
//		return phase.AwaitThen(kont.Pure(0))
//	})
//	receiver := phase.AwaitBind(func() kont.Eff[int] {
//		v, _ := rx.Recv()
//		return kont.Pure(v)
//	})
//	results := phase.Run(nil, sender, receiver)
//	// results[1] == 42
package phase
