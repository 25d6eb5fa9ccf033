// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import (
	"code.hybscloud.com/kont"
)

// Await is the effect operation marking a phase boundary.
// Perform(Await{}) parks the participant until the host releases the next
// phase window: [Exec] and [Advance] dispatch it on the injected
// [Barrier], [Run] dispatches it when every live participant has parked.
//
// Channel operations themselves are not effects — they are plain memory
// operations performed inside the phase windows between Awaits. The one
// thing a participant must declare to its driver is where its windows
// end, and Await is that declaration.
type Await struct {
	kont.Phantom[struct{}]
}

// phaseDispatcher is the structural interface for phase operations.
// DispatchPhase blocks in the injected barrier; it never fails, because a
// barrier has no refusal — a participant that reaches the boundary is
// always entitled to cross it once everyone else has.
type phaseDispatcher interface {
	DispatchPhase(b Barrier) kont.Resumed
}

// DispatchPhase handles Await by waiting on the injected barrier.
func (Await) DispatchPhase(b Barrier) kont.Resumed {
	b.Wait()
	return struct{}{}
}
