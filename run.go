// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/kont"
)

// Run executes a set of Cont-world participants deterministically on the
// calling goroutine. Each participant is stepped to its next phase
// boundary; once every live participant has parked, the commit action
// (for example [FlushAll] of the double-buffered keys, nil for none) runs
// and the next phase window opens. Does not spawn goroutines or create
// channels, and needs no memory barrier: everything runs on one
// goroutine, so the phase ordering is program order.
//
// Participants that complete drop out; the remaining ones keep cycling.
// Run is the host-program driver for tests and deterministic simulation;
// parallel hosts use [Exec] with a real barrier instead.
func Run[R any](commit func(), participants ...kont.Eff[R]) []R {
	exprs := make([]kont.Expr[R], len(participants))
	for i, p := range participants {
		exprs[i] = Reify(p)
	}
	return RunExpr(commit, exprs...)
}

// RunExpr executes a set of Expr-world participants deterministically on
// the calling goroutine. See [Run].
func RunExpr[R any](commit func(), participants ...kont.Expr[R]) []R {
	results := make([]R, len(participants))
	susps := make([]*kont.Suspension[R], len(participants))
	live := 0
	for i, p := range participants {
		r, s := kont.StepExpr(p)
		results[i] = r
		if s != nil {
			if _, ok := s.Op().(phaseDispatcher); !ok {
				panic("phase: unhandled effect in RunExpr")
			}
			susps[i] = s
			live++
		}
	}
	for live > 0 {
		// Every live participant is parked at a phase boundary:
		// the pending buffers may be published.
		if commit != nil {
			commit()
		}
		for i, s := range susps {
			if s == nil {
				continue
			}
			r, next := s.Resume(struct{}{})
			results[i] = r
			if next == nil {
				susps[i] = nil
				live--
				continue
			}
			if _, ok := next.Op().(phaseDispatcher); !ok {
				panic("phase: unhandled effect in RunExpr")
			}
			susps[i] = next
		}
	}
	return results
}
