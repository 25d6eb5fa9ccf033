// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/kont"
)

// phaseHandler implements kont.Handler for phase effects, dispatching
// every Await on the injected barrier.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type phaseHandler[R any] struct {
	b Barrier
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h phaseHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(phaseDispatcher)
	if !ok {
		panic("phase: unhandled effect in phaseHandler")
	}
	return pop.DispatchPhase(h.b), true
}

// Exec runs a Cont-world phase protocol for one participant, waiting in
// the injected barrier at every phase boundary. This is the entry point
// for multi-goroutine hosts: spawn one goroutine per participant, move
// each participant's tokens into it, and Exec with the shared barrier.
func Exec[R any](b Barrier, protocol kont.Eff[R]) R {
	h := phaseHandler[R]{b: b}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world phase protocol for one participant,
// waiting in the injected barrier at every phase boundary.
func ExecExpr[R any](b Barrier, protocol kont.Expr[R]) R {
	h := phaseHandler[R]{b: b}
	return kont.HandleExpr(protocol, h)
}
