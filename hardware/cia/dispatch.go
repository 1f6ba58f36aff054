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
	"github.com/jetsetilly/gopher6526/hardware/cia/tod"
)

// Store writes data to the register at address. If the CPU is in the write
// cycles of a read-modify-write instruction then the value of the most recent
// read is written one cycle before data.
func (c *CIA) Store(address uint16, data uint8) {
	clk := c.bus.Clock.Cycle()
	c.checkOrder(clk)

	e := effective(clk, StoreOffset)
	reg := address & 0x0f

	if c.bus.Clock.RMW() && e > 0 {
		c.store(reg, c.lastRead, e-1)
	}

	c.store(reg, data, e)
}

func (c *CIA) store(reg uint16, data uint8, e uint64) {
	c.resolve(e)
	c.updateLine(e)

	switch reg {
	case PRA, DDRA:
		c.regs[reg] = data
		c.forwardA(e)

	case PRB, DDRB:
		c.regs[reg] = data
		c.forwardB(e)
		if reg == PRB {
			c.bus.Host.PulseHandshake(e)
		}

	case TAL:
		c.regs[reg] = data
		c.ta.SetLatchLo(data)

	case TBL:
		c.regs[reg] = data
		c.tb.SetLatchLo(data)

	case TAH:
		c.regs[reg] = data
		c.ta.SetLatchHi(data)
		if c.ta.Running() {
			c.ta.ForceLoad(e)
		} else {
			c.ta.Load()
		}
		c.ta.Toggle = true
		c.ifr &^= IntTA
		c.updateLine(e)
		c.rearm()

	case TBH:
		c.regs[reg] = data
		c.tb.SetLatchHi(data)
		c.tb.Load()

	case TODTEN, TODSEC, TODMIN, TODHR:
		if c.tod.Write(int(reg-TODTEN), data, c.regs[CRB]&crTODAlarm == crTODAlarm) {
			c.ifr |= IntTOD
			c.updateLine(e)
		}

	case SDR:
		c.regs[reg] = data
		c.queueSerial(data)

	case ICR:
		if data&IntIR == IntIR {
			c.ier |= data & 0x7f
		} else {
			c.ier &^= data & 0x7f
		}
		c.updateLine(e)

	case CRA:
		state := timer.Stopped
		if data&0x21 == crStart {
			state = timer.Running
		}
		if (data^c.regs[CRA])&crSPOut != 0 {
			c.abandonSerial()
		}
		c.ta.Control(e, state, data&crOneShot == crOneShot, data&crLoad == crLoad)
		c.regs[reg] = data &^ crLoad
		c.forwardB(e)
		c.rearm()

	case CRB:
		var state timer.State
		switch {
		case data&0x41 == 0x41:
			state = timer.CountTA
		case data&0x61 == crStart:
			state = timer.Running
		default:
			state = timer.Stopped
		}
		c.tb.Control(e, state, data&crOneShot == crOneShot, data&crLoad == crLoad)
		c.regs[reg] = data &^ crLoad
		c.forwardB(e)
		c.rearm()
	}
}

// Read returns the value of the register at address. Reading some registers
// changes the state of the chip. Use Peek() to read without side effects.
func (c *CIA) Read(address uint16) uint8 {
	clk := c.bus.Clock.Cycle()
	c.checkOrder(clk)

	v := c.read(address&0x0f, effective(clk, ReadOffset))
	c.lastRead = v
	return v
}

func (c *CIA) read(reg uint16, e uint64) uint8 {
	if reg == ICR {
		return c.readICR(e)
	}

	c.resolve(e)
	c.updateLine(e)

	switch reg {
	case PRA:
		return c.bus.Host.ReadPortA()
	case PRB:
		return c.timerOutputs(c.bus.Host.ReadPortB(), e, c.ta, c.tb)
	case TAL:
		return uint8(c.ta.Count(e))
	case TAH:
		return uint8(c.ta.Count(e) >> 8)
	case TBL:
		return uint8(c.tb.Count(e))
	case TBH:
		return uint8(c.tb.Count(e) >> 8)
	case TODTEN, TODSEC, TODMIN, TODHR:
		return c.tod.Read(int(reg - TODTEN))
	}

	return c.regs[reg]
}

// reading ICR clears all interrupt flags and releases the interrupt line.
func (c *CIA) readICR(e uint64) uint8 {
	c.bus.Host.ReadInterruptSnapshot()
	c.resolve(e)

	v := c.ifr
	if c.ifr&c.ier != 0 {
		v |= IntIR
	}

	c.ifr = 0
	c.updateLine(e)
	c.lastICRRead = e
	c.rearm()

	return v
}

// Peek returns the value that Read() would return without changing the state
// of the chip. Reading ICR does not clear the flags and reading the TOD
// registers does not latch the time.
func (c *CIA) Peek(address uint16) uint8 {
	reg := address & 0x0f
	e := effective(c.bus.Clock.Cycle(), ReadOffset)

	// resolve copies of the timers
	ta := *c.ta
	tb := *c.tb
	ifr := c.ifr
	if n := ta.Resolve(e); n > 0 {
		ifr |= IntTA
		if tb.State() == timer.CountTA {
			last, _ := ta.LastUnderflow()
			if tb.Decrement(last, n) > 0 {
				ifr |= IntTB
			}
		}
	}
	if tb.Resolve(e) > 0 {
		ifr |= IntTB
	}

	switch reg {
	case PRA:
		return c.bus.Host.ReadPortA()
	case PRB:
		return c.timerOutputs(c.bus.Host.ReadPortB(), e, &ta, &tb)
	case TAL:
		return uint8(ta.Count(e))
	case TAH:
		return uint8(ta.Count(e) >> 8)
	case TBL:
		return uint8(tb.Count(e))
	case TBH:
		return uint8(tb.Count(e) >> 8)
	case TODTEN, TODSEC, TODMIN, TODHR:
		return c.tod.Peek(int(reg - TODTEN))
	case ICR:
		if ifr&c.ier != 0 {
			return ifr | IntIR
		}
		return ifr
	case CRA:
		// one-shot timer has stopped since the last resolution
		if c.ta.State() != timer.Stopped && ta.State() == timer.Stopped {
			return c.regs[CRA] &^ crStart
		}
	case CRB:
		if c.tb.State() != timer.Stopped && tb.State() == timer.Stopped {
			return c.regs[CRB] &^ crStart
		}
	}

	return c.regs[reg]
}

// TOD returns a copy of the time-of-day clock.
func (c *CIA) TOD() tod.Clock {
	return *c.tod
}

// TimerA returns a copy of timer A. The copy is not resolved to the current
// cycle.
func (c *CIA) TimerA() timer.Timer {
	return *c.ta
}

// TimerB returns a copy of timer B.
func (c *CIA) TimerB() timer.Timer {
	return *c.tb
}
