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

import (
	"github.com/jetsetilly/gopher6526/hardware/cia/timer"
	"github.com/jetsetilly/gopher6526/logger"
)

// forward the state of the interrupt line if it has changed.
func (c *CIA) updateLine(cycle uint64) {
	asserted := c.ifr&c.ier&0x7f != 0
	if asserted == c.line {
		return
	}
	c.line = asserted
	c.bus.Line.Set(asserted, cycle)
	if c.trace {
		logger.Logf(c.ins, c.label, "interrupt line %v at %d (IFR=%02x IER=%02x)", asserted, cycle, c.ifr, c.ier)
	}
}

// resolve all timer events up to and including the cycle. the interrupt line
// is not updated.
func (c *CIA) resolve(cycle uint64) {
	if n := c.ta.Resolve(cycle); n > 0 {
		c.ifr |= IntTA
		if c.ta.State() == timer.Stopped {
			c.regs[CRA] &^= crStart
		}

		last, _ := c.ta.LastUnderflow()
		if c.trace {
			logger.Logf(c.ins, c.label, "TA underflow at %d (%d)", last, n)
		}

		c.shift(n)

		if c.tb.State() == timer.CountTA {
			if c.tb.Decrement(last, n) > 0 {
				c.underflowTB(last)
			}
		}
	}

	if c.tb.Resolve(cycle) > 0 {
		last, _ := c.tb.LastUnderflow()
		c.underflowTB(last)
	}

	if c.regs[CRA]&crPBOn == crPBOn || c.regs[CRB]&crPBOn == crPBOn {
		c.forwardB(cycle)
		c.armPulse(cycle)
	}
}

// a pulse on PB6 or PB7 lasts for the single cycle of the underflow. the
// falling edge is forwarded by the pulse alarm on the following cycle.
func (c *CIA) armPulse(cycle uint64) {
	pulse := func(cr uint8, t *timer.Timer) bool {
		return cr&(crPBOn|crToggle) == crPBOn && t.Underflowed(cycle)
	}
	if pulse(c.regs[CRA], c.ta) || pulse(c.regs[CRB], c.tb) {
		c.alarmPulse.Set(cycle + 1)
	}
}

// callback for the pulse alarm.
func (c *CIA) pulseAlarm(cycle uint64) {
	c.noteAlarm(cycle)
	c.forwardB(cycle)
}

func (c *CIA) underflowTB(cycle uint64) {
	c.ifr |= IntTB
	if c.tb.State() == timer.Stopped {
		c.regs[CRB] &^= crStart
	}
	if c.trace {
		logger.Logf(c.ins, c.label, "TB underflow at %d", cycle)
	}
}

// set the timer alarms for the next underflow of each timer.
func (c *CIA) rearm() {
	if next, ok := c.ta.Next(); ok {
		c.alarmTA.Set(next)
	} else {
		c.alarmTA.Unset()
	}
	if next, ok := c.tb.Next(); ok {
		c.alarmTB.Set(next)
	} else {
		c.alarmTB.Unset()
	}
}

func (c *CIA) noteAlarm(cycle uint64) {
	c.lastAlarm = cycle
	c.dispatched = true
}

// callback for both timer alarms.
func (c *CIA) timerAlarm(cycle uint64) {
	c.noteAlarm(cycle)
	c.resolve(cycle)
	c.updateLine(cycle)
	c.rearm()
}

// callback for the TOD alarm.
func (c *CIA) todAlarm(cycle uint64) {
	c.noteAlarm(cycle)
	c.alarmTOD.Set(cycle + c.tod.TicksPerTenth)
	if c.tod.Tick() {
		c.ifr |= IntTOD
		c.updateLine(cycle)
	}
}

// AcknowledgeFlags clears the interrupt flags in the mask without reading ICR.
// Used by hosts that acknowledge interrupts by writing to the flag register.
// Acknowledging a flag that is not set is logged.
func (c *CIA) AcknowledgeFlags(mask uint8) {
	e := effective(c.bus.Clock.Cycle(), StoreOffset)
	c.resolve(e)

	mask &= 0x7f
	if mask&^c.ifr != 0 {
		logger.Logf(c.ins, c.label, "acknowledging interrupt flags that are not set (%02x)", mask&^c.ifr)
	}

	c.ifr &^= mask
	c.updateLine(e)
	c.rearm()
}

// SetFlag is called when the FLAG input sees a negative edge.
func (c *CIA) SetFlag() {
	e := effective(c.bus.Clock.Cycle(), ReadOffset)
	c.resolve(e)
	c.ifr |= IntFLG
	c.updateLine(e)
	c.rearm()
}

// SetSerialInput is called when a byte has been shifted into the serial
// register from the SP line.
func (c *CIA) SetSerialInput(data uint8) {
	e := effective(c.bus.Clock.Cycle(), ReadOffset)
	c.resolve(e)
	c.regs[SDR] = data
	c.ifr |= IntSDR
	c.updateLine(e)
	c.rearm()
}
