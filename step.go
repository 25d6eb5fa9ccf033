// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a phase protocol until the first phase boundary.
// Returns (result, nil) on completion, or (zero, suspension) if parked.
// Every window of token operations before the boundary has run by the
// time Step returns.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the parked phase boundary on the injected barrier
// and evaluates the protocol to its next boundary or completion.
// The suspension is consumed; the affine kont convention applies
// (resuming a suspension twice panics).
func Advance[R any](b Barrier, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	pop, ok := susp.Op().(phaseDispatcher)
	if !ok {
		panic("phase: unhandled effect in Advance")
	}
	return susp.Resume(pop.DispatchPhase(b))
}
