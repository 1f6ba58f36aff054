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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6526/assert"
	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/alarm"
	"github.com/jetsetilly/gopher6526/hardware/cia/timer"
	"github.com/jetsetilly/gopher6526/hardware/cia/tod"
	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/hardware/instance"
	"github.com/jetsetilly/gopher6526/logger"
)

// Sentinal error patterns.
const (
	BusError = "cia: %s: %v"
)

// CIA is a single 6526 chip.
type CIA struct {
	ins   *instance.Instance
	label string
	bus   Bus

	regs [NumRegisters]uint8

	ta  *timer.Timer
	tb  *timer.Timer
	tod *tod.Clock

	// interrupt flags and interrupt enable. bit 7 is never set in either
	ifr uint8
	ier uint8

	// the state of the interrupt line as last forwarded to the bus
	line bool

	// number of half-bits remaining in the current serial transfer. each
	// byte is 16 half-bits
	shiftBits    int
	shiftData    uint8
	shiftStarted bool

	// the most recent output bytes forwarded to the host
	oldPA uint8
	oldPB uint8

	// the value of the most recent read. used by the read-modify-write store
	lastRead uint8

	// cycle of the most recent ICR read
	lastICRRead uint64

	alarmTA  *alarm.Alarm
	alarmTB  *alarm.Alarm
	alarmTOD *alarm.Alarm

	// falling edge of a PB6/PB7 pulse
	alarmPulse *alarm.Alarm

	// cycle of the most recently dispatched alarm belonging to this chip
	lastAlarm  uint64
	dispatched bool

	// log timer underflows and changes to the interrupt line
	trace bool
}

// NewCIA is the preferred method of initialisation for the CIA type. The
// label is used to name the chip in log entries and in snapshots.
func NewCIA(ins *instance.Instance, label string, bus Bus) (*CIA, error) {
	if ins == nil {
		return nil, curated.Errorf(BusError, label, "no instance")
	}
	if bus.Clock == nil {
		return nil, curated.Errorf(BusError, label, "no clock")
	}
	if bus.Scheduler == nil {
		return nil, curated.Errorf(BusError, label, "no scheduler")
	}
	if bus.Line == nil {
		bus.Line = nullLine{}
	}
	if bus.Host == nil {
		bus.Host = NullHost{}
	}

	c := &CIA{
		ins:   ins,
		label: label,
		bus:   bus,
		ta:    timer.NewTimer("TA"),
		tb:    timer.NewTimer("TB"),
		tod:   tod.NewClock(clocks.TicksPerTenth(ins.Prefs.Spec())),
	}

	c.alarmTA = bus.Scheduler.NewAlarm(fmt.Sprintf("%s TA", label), c.timerAlarm)
	c.alarmTB = bus.Scheduler.NewAlarm(fmt.Sprintf("%s TB", label), c.timerAlarm)
	c.alarmTOD = bus.Scheduler.NewAlarm(fmt.Sprintf("%s TOD", label), c.todAlarm)
	c.alarmPulse = bus.Scheduler.NewAlarm(fmt.Sprintf("%s PB pulse", label), c.pulseAlarm)

	c.Reset()

	return c, nil
}

func (c *CIA) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%s: IFR=%02x IER=%02x line=%v\n", c.label, c.ifr, c.ier, c.line)
	for i := range NumRegisters {
		fmt.Fprintf(&s, "%-6s %02x", RegisterNames[i], c.Peek(uint16(i)))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	fmt.Fprintf(&s, "%s\n%s\nTOD %s", c.ta, c.tb, c.tod)
	if c.shiftBits > 0 {
		fmt.Fprintf(&s, "\nSDR %d half-bits remaining", c.shiftBits)
	}
	return s.String()
}

// Label returns the label of the chip.
func (c *CIA) Label() string {
	return c.label
}

// SetTrace turns the logging of timer events on or off.
func (c *CIA) SetTrace(trace bool) {
	c.trace = trace
}

// IFR returns the interrupt flags. Pending events are not resolved.
func (c *CIA) IFR() uint8 {
	return c.ifr
}

// IER returns the interrupt enable mask.
func (c *CIA) IER() uint8 {
	return c.ier
}

// Asserted returns the state of the interrupt line.
func (c *CIA) Asserted() bool {
	return c.line
}

// Reset the chip. This is the equivalent of the RES pin being pulled low.
// All registers, including the port registers and the data direction
// registers, are cleared. The timer latches are set to 0xffff and both timers
// are stopped.
//
// Real hardware is documented as keeping the timer and shift register state
// on RES. Here they are cleared along with everything else.
func (c *CIA) Reset() {
	clk := c.bus.Clock.Cycle()

	c.regs = [NumRegisters]uint8{}
	c.lastICRRead = 0
	c.shiftBits = 0
	c.shiftData = 0
	c.shiftStarted = false

	c.ta.Reset()
	c.tb.Reset()
	c.alarmTA.Unset()
	c.alarmTB.Unset()
	c.alarmPulse.Unset()

	c.tod.Reset()
	c.tod.TicksPerTenth = clocks.TicksPerTenth(c.ins.Prefs.Spec())
	c.alarmTOD.Set(clk + c.tod.TicksPerTenth)

	c.ifr = 0
	c.ier = 0
	c.line = false
	c.bus.Line.Set(false, clk)

	c.oldPA = 0xff
	c.oldPB = 0xff

	c.bus.Host.OnReset()
}

// the cycle on which an access happens. the clock is never allowed to go
// below zero.
func effective(clk uint64, offset uint64) uint64 {
	if clk < offset {
		return 0
	}
	return clk - offset
}

// bus accesses must happen before the alarms for that cycle are dispatched.
func (c *CIA) checkOrder(clk uint64) {
	if c.dispatched && clk <= c.lastAlarm {
		assert.Check(false, "%s: bus access at cycle %d after alarm dispatch at cycle %d", c.label, clk, c.lastAlarm)
		if c.ins.Prefs.AlarmCheck.Get().(bool) {
			logger.Logf(c.ins, c.label, "bus access at cycle %d after alarm dispatch at cycle %d", clk, c.lastAlarm)
		}
	}
}

// output of port A.
func (c *CIA) portA() uint8 {
	return c.regs[PRA] | ^c.regs[DDRA]
}

// replace PB6 and PB7 with the timer outputs if the control registers say so.
func (c *CIA) timerOutputs(v uint8, cycle uint64, ta *timer.Timer, tb *timer.Timer) uint8 {
	if c.regs[CRA]&crPBOn == crPBOn {
		v &^= 0x40
		if ta.Output(cycle, c.regs[CRA]&crToggle == crToggle) {
			v |= 0x40
		}
	}
	if c.regs[CRB]&crPBOn == crPBOn {
		v &^= 0x80
		if tb.Output(cycle, c.regs[CRB]&crToggle == crToggle) {
			v |= 0x80
		}
	}
	return v
}

// output of port B.
func (c *CIA) portB(cycle uint64) uint8 {
	return c.timerOutputs(c.regs[PRB]|^c.regs[DDRB], cycle, c.ta, c.tb)
}

// forward port output to the host if it has changed.
func (c *CIA) forwardA(cycle uint64) {
	if v := c.portA(); v != c.oldPA {
		c.oldPA = v
		c.bus.Host.StorePortA(cycle, v)
	}
}

func (c *CIA) forwardB(cycle uint64) {
	if v := c.portB(cycle); v != c.oldPB {
		c.oldPB = v
		c.bus.Host.StorePortB(cycle, v)
	}
}
