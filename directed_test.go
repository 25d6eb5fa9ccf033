// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/phase"
)

func TestDirectedCycle(t *testing.T) {
	c := phase.NewDirected(0, 0)
	r, w, key := c.Split()

	for i := range 3 {
		if got := r.Get(); got != i {
			t.Fatalf("cycle %d: read %d, want %d", i, got, i)
		}
		w.Set(i + 1)
		key.Flush()
	}

	rd, wd := key.Reclaim(w, r)
	if rd != 3 || wd != 3 {
		t.Fatalf("reclaimed (%d, %d), want (3, 3)", rd, wd)
	}
}

func TestDirectedReaderCopyable(t *testing.T) {
	c := phase.NewDirected(0, 0)
	r, w, key := c.Split()

	r2 := r
	w.Set(9)
	key.Flush()
	if r.Get() != 9 || r2.Get() != 9 {
		t.Fatalf("reader copies observed different values")
	}
	key.Reclaim(w, r, r2)
}

func TestDirectedClone(t *testing.T) {
	c := phase.NewDirectedClone(nil, []int{1, 2}, slices.Clone[[]int])
	r, w, key := c.Split()

	key.Flush()
	got := r.Get()
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("read %v, want [1 2]", got)
	}
	// The clone keeps the read side independent of later writes.
	(*w.Ref())[0] = 99
	if got[0] != 1 {
		t.Fatalf("reader aliases the write buffer")
	}
	key.Reclaim(w, r)
}

func TestDirectedReclaimForeignTokensPanic(t *testing.T) {
	c1 := phase.NewDirected(0, 0)
	c2 := phase.NewDirected(0, 0)
	r1, w1, key := c1.Split()
	r2, w2, _ := c2.Split()

	mustPanic(t, "phase: writer does not belong to this directed channel", func() {
		key.Reclaim(w2, r1)
	})
	mustPanic(t, "phase: reader does not belong to this directed channel", func() {
		key.Reclaim(w1, r2)
	})
}
