// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/kont"
)

// phaseErrorHandler handles both phase and error effects.
// Await waits in the injected barrier; error operations short-circuit on
// Throw, returning kont.Either.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type phaseErrorHandler[E, A any] struct {
	b      Barrier
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Phase+Error handler.
// Dispatch order: Phase → Error.
func (h phaseErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if pop, ok := op.(phaseDispatcher); ok {
		return pop.DispatchPhase(h.b), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("phase: unhandled effect in phaseErrorHandler")
}

// ExecError runs a phase protocol with error handling for one
// participant, waiting in the injected barrier at every boundary.
// Returns Either[E, R] — Right on success, Left on Throw.
func ExecError[E, R any](b Barrier, protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := phaseErrorHandler[E, R]{b: b, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr phase protocol with error handling for one
// participant, waiting in the injected barrier at every boundary.
// Returns Either[E, R] — Right on success, Left on Throw.
func ExecErrorExpr[E, R any](b Barrier, protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := phaseErrorHandler[E, R]{b: b, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// StepError evaluates a phase protocol with error support until the
// first boundary. Returns (Either[E, R], nil) on completion or error, or
// (zero, suspension) if parked.
func StepError[E, R any](protocol kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the parked operation. Await waits in the
// injected barrier. Error ops are eager: Throw discards the suspension
// and returns Left.
func AdvanceError[E, R any](b Barrier, susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	if pop, ok := susp.Op().(phaseDispatcher); ok {
		return susp.Resume(pop.DispatchPhase(b))
	}
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil
		}
		return susp.Resume(v)
	}
	panic("phase: unhandled effect in AdvanceError")
}

// RunError executes Cont-world participants with error handling on the
// calling goroutine, committing between phases like [Run]. A participant
// that throws drops out with Left; the others keep cycling.
func RunError[E, R any](commit func(), participants ...kont.Eff[R]) []kont.Either[E, R] {
	exprs := make([]kont.Expr[R], len(participants))
	for i, p := range participants {
		exprs[i] = Reify(p)
	}
	return RunErrorExpr[E](commit, exprs...)
}

// RunErrorExpr executes Expr-world participants with error handling on
// the calling goroutine. See [RunError].
func RunErrorExpr[E, R any](commit func(), participants ...kont.Expr[R]) []kont.Either[E, R] {
	results := make([]kont.Either[E, R], len(participants))
	susps := make([]*kont.Suspension[kont.Either[E, R]], len(participants))
	live := 0
	for i, p := range participants {
		r, s := StepError[E, R](p)
		r, s = settleError(r, s)
		results[i] = r
		if s != nil {
			susps[i] = s
			live++
		}
	}
	for live > 0 {
		if commit != nil {
			commit()
		}
		for i, s := range susps {
			if s == nil {
				continue
			}
			r, next := s.Resume(struct{}{})
			r, next = settleError(r, next)
			results[i] = r
			if next == nil {
				susps[i] = nil
				live--
				continue
			}
			susps[i] = next
		}
	}
	return results
}

// settleError dispatches error operations eagerly until the participant
// parks at a phase boundary or completes. Error effects never cross a
// boundary: they resolve inside the window that raised them.
func settleError[E, R any](r kont.Either[E, R], s *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	for s != nil {
		if _, ok := s.Op().(phaseDispatcher); ok {
			return r, s
		}
		eop, ok := s.Op().(interface {
			DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
		})
		if !ok {
			panic("phase: unhandled effect in RunErrorExpr")
		}
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			s.Discard()
			return kont.Left[E, R](ctx.Err), nil
		}
		r, s = s.Resume(v)
	}
	return r, s
}
