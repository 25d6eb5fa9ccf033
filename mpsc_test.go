// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/phase"
)

func TestMPSCGatherByIdentity(t *testing.T) {
	c := phase.NewMPSC[int](2)
	txs, rx := c.Split()
	if len(txs) != 2 {
		t.Fatalf("got %d contributors, want 2", len(txs))
	}
	if txs[0].Index() != 0 || txs[1].Index() != 1 {
		t.Fatalf("contributor indices %d,%d, want 0,1", txs[0].Index(), txs[1].Index())
	}

	// Send in reverse order: the gathered sequence follows identity,
	// not arrival.
	txs[1] = txs[1].Send(20)
	txs[0] = txs[0].Send(10)
	got, rx := rx.Gather()
	if got[0] != 10 || got[1] != 20 {
		t.Fatalf("gathered %v, want [10 20]", got)
	}
	_ = rx
}

func TestMPSCRepeating(t *testing.T) {
	c := phase.NewMPSC[int](3)
	txs, rx := c.Split()

	for i := range 3 {
		for j := range txs {
			txs[j] = txs[j].Send(i*100 + j)
		}
		var got []int
		got, rx = rx.Gather()
		for j := range got {
			if got[j] != i*100+j {
				t.Fatalf("phase %d: gathered %v", i, got)
			}
		}
	}
}

func TestMPSCGatherMissingSendPanics(t *testing.T) {
	c := phase.NewMPSC[int](2)
	txs, rx := c.Split()

	txs[0].Send(1)
	mustPanic(t, "phase: recv on empty slot", func() {
		rx.Gather()
	})
}

func TestMPSCZeroContributorsPanics(t *testing.T) {
	mustPanic(t, "phase: contributor count must be at least 1", func() {
		phase.NewMPSC[int](0)
	})
}

func TestMPSCThreaded(t *testing.T) {
	const k = 4
	c := phase.NewMPSC[int](k)
	txs, rx := c.Split()
	b := newCyclicBarrier(k + 1)

	const phases = 50
	var sums [phases]int
	var wg sync.WaitGroup
	wg.Add(k + 1)
	for j := range k {
		tx := txs[j]
		go func() {
			defer wg.Done()
			for i := range phases {
				tx = tx.Send(i * (j + 1))
				b.Wait()
				b.Wait()
			}
		}()
	}
	go func() {
		defer wg.Done()
		for i := range phases {
			b.Wait()
			var got []int
			got, rx = rx.Gather()
			for _, v := range got {
				sums[i] += v
			}
			b.Wait()
		}
	}()
	wg.Wait()

	for i := range phases {
		want := i * (1 + 2 + 3 + 4)
		if sums[i] != want {
			t.Fatalf("phase %d: sum %d, want %d", i, sums[i], want)
		}
	}
}
