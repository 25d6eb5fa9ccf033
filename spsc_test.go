// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/phase"
)

func TestSPSCRoundTrip(t *testing.T) {
	c := phase.NewSPSC[int]()
	tx, rx := c.Split()

	tx = tx.Send(42)
	if !rx.Ready() {
		t.Fatalf("slot not ready after send")
	}
	v, rx := rx.Recv()
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	if rx.Ready() {
		t.Fatalf("slot still ready after recv")
	}
	_ = tx
}

func TestSPSCRepeating(t *testing.T) {
	c := phase.NewSPSC[int]()
	tx, rx := c.Split()

	for i := range 3 {
		tx = tx.Send(i * 10)
		var v int
		v, rx = rx.Recv()
		if v != i*10 {
			t.Fatalf("phase %d: got %d, want %d", i, v, i*10)
		}
	}
}

func TestSPSCOverwriteNotQueue(t *testing.T) {
	c := phase.NewSPSC[int]()
	tx, rx := c.Split()

	tx = tx.Send(1)
	tx = tx.Send(2)
	v, rx := rx.Recv()
	if v != 2 {
		t.Fatalf("got %d, want the overwriting value 2", v)
	}
	if rx.Ready() {
		t.Fatalf("slot queued a second value")
	}
	_ = tx
}

func TestSPSCRecvEmptyPanics(t *testing.T) {
	c := phase.NewSPSC[int]()
	_, rx := c.Split()

	mustPanic(t, "phase: recv on empty slot", func() {
		rx.Recv()
	})
}

func TestSPSCRecvZeroesSlot(t *testing.T) {
	c := phase.NewSPSC[*int]()
	tx, rx := c.Split()

	n := 7
	tx.Send(&n)
	p, rx := rx.Recv()
	if p == nil || *p != 7 {
		t.Fatalf("got %v, want pointer to 7", p)
	}
	// A second recv must panic, not return the stale pointer.
	mustPanic(t, "phase: recv on empty slot", func() {
		rx.Recv()
	})
}

// TestSPSCThreaded moves values across goroutines under a real barrier.
// Write window, barrier, read window, barrier, next write window.
func TestSPSCThreaded(t *testing.T) {
	c := phase.NewSPSC[int]()
	tx, rx := c.Split()
	b := newCyclicBarrier(2)

	const phases = 100
	var got [phases]int
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range phases {
			tx = tx.Send(i)
			b.Wait()
			// Read window belongs to the receiver.
			b.Wait()
		}
	}()
	go func() {
		defer wg.Done()
		for i := range phases {
			b.Wait()
			got[i], rx = rx.Recv()
			b.Wait()
		}
	}()
	wg.Wait()

	for i := range phases {
		if got[i] != i {
			t.Fatalf("phase %d: got %d, want %d", i, got[i], i)
		}
	}
}
