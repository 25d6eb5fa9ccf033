// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase_test

import (
	"testing"

	"code.hybscloud.com/phase"
)

func TestSerialMonotonic(t *testing.T) {
	c1 := phase.NewSPSC[int]()
	c2 := phase.NewSwap(0, 0)
	c3 := phase.NewMPSC[int](2)

	s1 := c1.Serial()
	s2 := c2.Serial()
	s3 := c3.Serial()

	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
	if s2 >= s3 {
		t.Fatalf("serials not increasing: %d >= %d", s2, s3)
	}
}

func TestSplitTwicePanics(t *testing.T) {
	c := phase.NewSPSC[int]()
	c.Split()
	mustPanic(t, "phase: channel already split", func() {
		c.Split()
	})
}

func TestSplitTwicePanicsEveryShape(t *testing.T) {
	splits := []func(){
		func() { c := phase.NewOneshot[int](); c.Split(); c.Split() },
		func() { c := phase.NewSPMC[int](2); c.Split(); c.Split() },
		func() { c := phase.NewMPSC[int](2); c.Split(); c.Split() },
		func() { c := phase.NewMPMC[int](2); c.Split(); c.Split() },
		func() { c := phase.NewSwap(0, 0); c.Split(); c.Split() },
		func() { c := phase.NewDirected(0, 0); c.Split(); c.Split() },
		func() { c := phase.NewBidirected(0, 0, "", ""); c.Split(); c.Split() },
		func() { c := phase.NewCheckedSPSC[int](); c.Split(); c.Split() },
	}
	for _, f := range splits {
		mustPanic(t, "phase: channel already split", f)
	}
}
