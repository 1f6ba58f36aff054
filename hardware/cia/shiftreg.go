// This file is part of Gopher6526.
//
// Gopher6526 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6526 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6526.  If not, see <https://www.gnu.org/licenses/>.

package cia

// the shift register in output mode sends one bit for every two underflows of
// timer A. the host is given the whole byte when the first bit is sent.

// queue a byte written to SDR. a byte can be queued while another is being
// sent but not while two are already waiting.
func (c *CIA) queueSerial(data uint8) {
	if c.regs[CRA]&crSPOut != crSPOut {
		return
	}
	if c.shiftBits > 16 {
		return
	}
	if c.shiftBits == 0 {
		c.shiftData = data
		c.shiftStarted = false
	}
	c.shiftBits += 16
}

// advance the shift register by n timer A underflows.
func (c *CIA) shift(n int) {
	for i := 0; i < n && c.shiftBits > 0; i++ {
		if c.shiftBits%16 == 0 {
			if c.shiftStarted {
				c.bus.Host.StoreSerialByte(c.regs[SDR])
			} else {
				c.bus.Host.StoreSerialByte(c.shiftData)
				c.shiftStarted = true
			}
		}
		c.shiftBits--
		if c.shiftBits%16 == 0 {
			c.ifr |= IntSDR
		}
	}
}

// abandon any transfer in progress.
func (c *CIA) abandonSerial() {
	c.shiftBits = 0
	c.shiftStarted = false
}
