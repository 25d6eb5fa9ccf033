// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/kont"
)

// AwaitThen parks at the phase boundary and then continues with next.
// Fuses Perform(Await{}) + Then.
func AwaitThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Await{}), next)
}

// AwaitBind parks at the phase boundary and then continues with f.
// Fuses Perform(Await{}) + Bind; the closure runs inside the next phase
// window, which is where token operations for that window belong.
func AwaitBind[B any](f func() kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await{}), func(struct{}) kont.Eff[B] {
		return f()
	})
}

// Defer postpones construction of a protocol until evaluation time.
// Token operations placed inside f execute when the participant's current
// window runs, not when the protocol value is built.
func Defer[A any](f func() kont.Eff[A]) kont.Eff[A] {
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[A] {
		return f()
	})
}
