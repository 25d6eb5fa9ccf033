// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package phase

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing channel identifier.
// Each channel constructor assigns the next serial value.
type Serial = uint32

// counter is the global monotonic counter for channel serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}

// core is the bookkeeping embedded in every channel: the serial and the
// split-once guard. Splitting consumes the channel; after a successful
// Split no further tokens of any kind can be minted.
type core struct {
	serial Serial
	split  atomix.Uint32
}

func newCore() core {
	return core{serial: nextSerial()}
}

// Serial returns the serial number assigned to this channel.
func (c *core) Serial() Serial {
	return c.serial
}

// markSplit enforces the split-once contract.
// Atomic so that even a racing duplicate Split fails loudly rather than
// minting a second token set.
func (c *core) markSplit() {
	if !c.split.CompareAndSwap(0, 1) {
		panic("phase: channel already split")
	}
}
