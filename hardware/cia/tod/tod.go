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

package tod

import "fmt"

// Indexes into the Time, Alarm and Latch arrays. These are the same as the
// offset from the TOD_TEN register.
const (
	TEN = iota
	SEC
	MIN
	HR
)

// PM is the bit in the HR register that indicates the afternoon.
const PM = 0x80

// Clock is the time-of-day clock.
type Clock struct {
	Time  [4]uint8
	Alarm [4]uint8

	// time as it was when the clock was latched
	Latch   [4]uint8
	Latched bool

	// stopped by a write to the HR register. started by a write to TEN
	Stopped bool

	// the number of cycles between ticks
	TicksPerTenth uint64

	// time and alarm were equal the last time they were compared
	matched bool
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock(ticksPerTenth uint64) *Clock {
	clk := &Clock{
		TicksPerTenth: ticksPerTenth,
	}
	clk.Reset()
	return clk
}

func (clk *Clock) String() string {
	s := fmt.Sprintf("%02x:%02x:%02x.%x", clk.Time[HR]&0x1f, clk.Time[MIN], clk.Time[SEC], clk.Time[TEN])
	if clk.Time[HR]&PM == PM {
		s = fmt.Sprintf("%s pm", s)
	} else {
		s = fmt.Sprintf("%s am", s)
	}
	if clk.Stopped {
		s = fmt.Sprintf("%s (stopped)", s)
	}
	return s
}

// Reset clock to power-on state. Time and alarm are zero and the clock is
// running.
func (clk *Clock) Reset() {
	clk.Time = [4]uint8{}
	clk.Alarm = [4]uint8{}
	clk.Latch = [4]uint8{}
	clk.Latched = false
	clk.Stopped = false
	clk.matched = clk.Time == clk.Alarm
}

// Matched returns true if time and alarm were equal at the last comparison.
func (clk *Clock) Matched() bool {
	return clk.matched
}

// SetMatched is used when restoring the state of the clock.
func (clk *Clock) SetMatched(m bool) {
	clk.matched = m
}

// compare time and alarm. returns true only if the two have become equal
// since the last comparison.
func (clk *Clock) check() bool {
	m := clk.Time == clk.Alarm
	rising := m && !clk.matched
	clk.matched = m
	return rising
}

// increment BCD value. returns true if the value has wrapped from max.
func bcd(v uint8, max uint8) (uint8, bool) {
	if v == max {
		return 0, true
	}
	if v&0x0f >= 0x09 {
		return (v & 0xf0) + 0x10, false
	}
	return v + 1, false
}

// Tick advances the clock by one tenth of a second. Returns true if the
// time has become equal to the alarm.
func (clk *Clock) Tick() bool {
	if clk.Stopped {
		return false
	}

	carry := clk.Time[TEN]&0x0f == 0x09
	if carry {
		clk.Time[TEN] = 0
	} else {
		clk.Time[TEN] = (clk.Time[TEN] + 1) & 0x0f
	}

	if carry {
		clk.Time[SEC], carry = bcd(clk.Time[SEC]&0x7f, 0x59)
		if carry {
			clk.Time[MIN], carry = bcd(clk.Time[MIN]&0x7f, 0x59)
			if carry {
				pm := clk.Time[HR] & PM
				h := clk.Time[HR] & 0x1f
				switch h {
				case 0x11:
					h = 0x12
					pm ^= PM
				case 0x12:
					h = 0x01
				default:
					h, _ = bcd(h, 0x1f)
				}
				clk.Time[HR] = pm | h
			}
		}
	}

	return clk.check()
}

// mask out undefined bits of a register value.
func mask(reg int, v uint8) uint8 {
	switch reg {
	case TEN:
		return v & 0x0f
	case SEC, MIN:
		return v & 0x7f
	case HR:
		// writing hour 12 flips the PM bit
		if v&0x1f == 0x12 {
			return (v & 0x9f) ^ PM
		}
		return v & 0x9f
	}
	return v
}

// Write a value to either the time or the alarm. Writing the HR register of
// the time stops the clock and writing TEN starts it again. Returns true if
// the time has become equal to the alarm.
func (clk *Clock) Write(reg int, v uint8, alarm bool) bool {
	v = mask(reg, v)

	if alarm {
		clk.Alarm[reg] = v
	} else {
		switch reg {
		case TEN:
			clk.Stopped = false
		case HR:
			clk.Stopped = true
		}
		clk.Time[reg] = v
	}

	return clk.check()
}

// Read a time register. Reading HR latches the time until TEN is read.
func (clk *Clock) Read(reg int) uint8 {
	if !clk.Latched {
		clk.Latch = clk.Time
	}
	switch reg {
	case TEN:
		clk.Latched = false
	case HR:
		clk.Latched = true
	}
	return clk.Latch[reg]
}

// Peek returns the value that Read() would return without affecting the
// latch.
func (clk *Clock) Peek(reg int) uint8 {
	if clk.Latched {
		return clk.Latch[reg]
	}
	return clk.Time[reg]
}
