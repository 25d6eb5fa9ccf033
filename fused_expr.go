// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased values to eliminate heap escapes when boxing the
// empty Await struct into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprAwait       kont.Erased = Await{}
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprAwaitThen parks at the phase boundary and then continues with next.
// Fuses ExprPerform(Await{}) + ExprThen.
func ExprAwaitThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprAwait
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func awaitBindUnwind[B any](data, _, _ kont.Erased, _ kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func() kont.Expr[B])
	result := f()
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind parks at the phase boundary and then continues with f,
// which runs inside the next phase window.
// Fuses ExprPerform(Await{}) + ExprBind.
func ExprAwaitBind[B any](f func() kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprAwait
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprDefer postpones construction of a protocol until evaluation time,
// so token operations inside f execute when the participant's current
// window runs.
func ExprDefer[A any](f func() kont.Expr[A]) kont.Expr[A] {
	bf := kont.AcquireBindFrame()
	bf.F = func(kont.Erased) kont.Expr[kont.Erased] {
		result := f()
		return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
	}
	bf.Next = exprReturnFrame
	var zero A
	return kont.Expr[A]{Value: zero, Frame: bf}
}
