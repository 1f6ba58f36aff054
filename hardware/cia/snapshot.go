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
	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia/timer"
	"github.com/jetsetilly/gopher6526/snapshot"
)

// Sentinal error patterns.
const (
	SnapshotMajor   = "cia: %s: snapshot major version %d not supported"
	SnapshotVersion = "cia: %s: snapshot version %d.%d is newer than %d.%d"
	SnapshotError   = "cia: %s: %v"
)

// version of the snapshot module.
const (
	snapshotMajor = 1
	snapshotMinor = 1
)

// an ICR read older than this is not recorded in the snapshot.
const icrAgeLimit = 120

// bits in the flags byte of the snapshot.
const (
	flagTAPending = 0x01
	flagTBPending = 0x02
	flagShifting  = 0x04

	// since 1.1. the timer underflowed on the cycle of the snapshot
	flagTAUnderflow = 0x08
	flagTBUnderflow = 0x10

	flagTAToggle  = 0x40
	flagTBToggle  = 0x80
)

// bits in the TOD state byte of the snapshot.
const (
	todLatched = 0x01
	todStopped = 0x02
	todMatched = 0x04
)

// record is the decoded content of a snapshot module.
type record struct {
	minor uint8

	pra, prb, ddra, ddrb uint8
	taCount, tbCount     uint16
	todTime              [4]uint8
	sdr, ier, cra, crb   uint8
	taLatch, tbLatch     uint16
	ifr                  uint8
	flags                uint8
	shiftBits            uint8
	todAlarm             [4]uint8
	icrAge               uint8
	todState             uint8
	todLatch             [4]uint8

	// since 1.1
	todTicks  uint32
	taDelta   uint32
	tbDelta   uint32
	oldPA     uint8
	oldPB     uint8
	shiftData uint8
}

// WriteSnapshot adds a module for the CIA to the snapshot. The module is
// named after the label of the CIA.
func (c *CIA) WriteSnapshot(w *snapshot.Writer) error {
	clk := c.bus.Clock.Cycle()
	e := effective(clk, ReadOffset)

	c.resolve(e)
	c.updateLine(e)
	c.rearm()

	minor := uint8(snapshotMinor)
	if v, ok := c.ins.Prefs.SnapshotMinor.Get().(int); ok && v >= 0 && v < snapshotMinor {
		minor = uint8(v)
	}

	m, err := w.NewModule(c.label, snapshotMajor, minor)
	if err != nil {
		return curated.Errorf(SnapshotError, c.label, err)
	}

	m.PutByte(c.regs[PRA])
	m.PutByte(c.regs[PRB])
	m.PutByte(c.regs[DDRA])
	m.PutByte(c.regs[DDRB])
	m.PutWord(savedCount(c.ta, e))
	m.PutWord(savedCount(c.tb, e))
	m.PutBytes(c.tod.Time[:])
	m.PutByte(c.regs[SDR])
	m.PutByte(c.ier)
	m.PutByte(c.regs[CRA])
	m.PutByte(c.regs[CRB])
	m.PutWord(c.ta.Latch)
	m.PutWord(c.tb.Latch)
	m.PutByte(c.ifr)

	var flags uint8
	if c.ta.Toggle {
		flags |= flagTAToggle
	}
	if c.tb.Toggle {
		flags |= flagTBToggle
	}
	if _, ok := c.alarmTA.Pending(); ok {
		flags |= flagTAPending
	}
	if _, ok := c.alarmTB.Pending(); ok {
		flags |= flagTBPending
	}
	if c.shiftStarted {
		flags |= flagShifting
	}
	if minor >= 1 {
		if c.ta.Underflowed(e) {
			flags |= flagTAUnderflow
		}
		if c.tb.Underflowed(e) {
			flags |= flagTBUnderflow
		}
	}
	m.PutByte(flags)
	m.PutByte(uint8(c.shiftBits))
	m.PutBytes(c.tod.Alarm[:])

	var age uint8
	if c.lastICRRead > 0 && e-c.lastICRRead <= icrAgeLimit {
		age = uint8(e + 128 - c.lastICRRead)
	}
	m.PutByte(age)

	var state uint8
	if c.tod.Latched {
		state |= todLatched
	}
	if c.tod.Stopped {
		state |= todStopped
	}
	if c.tod.Matched() {
		state |= todMatched
	}
	m.PutByte(state)
	m.PutBytes(c.tod.Latch[:])

	if minor < 1 {
		return nil
	}

	// cycles until the next TOD tick, plus one. a tick that is due on this
	// cycle has not been dispatched yet
	var ticks uint32
	if next, ok := c.alarmTOD.Pending(); ok && next >= e {
		ticks = uint32(next-e) + 1
	}
	m.PutDword(ticks)
	m.PutDword(delta(c.ta, e))
	m.PutDword(delta(c.tb, e))
	m.PutByte(c.oldPA)
	m.PutByte(c.oldPB)
	m.PutByte(c.shiftData)

	return nil
}

// the counter value to save. a timer that has stopped on this cycle is saved
// with the value it will have on the next cycle.
func savedCount(t *timer.Timer, cycle uint64) uint16 {
	if t.State() != timer.Running && t.Underflowed(cycle) {
		return t.Latch
	}
	return t.Count(cycle)
}

// the cycles until the next underflow of the timer, plus one. zero if the
// timer is not counting cycles.
func delta(t *timer.Timer, cycle uint64) uint32 {
	if d, ok := t.Delta(cycle); ok {
		return d + 1
	}
	return 0
}

// decode a snapshot module. all fields are read before any are used so
// that a short module is detected before the state of the chip is changed.
func decode(m *snapshot.Module) (record, error) {
	var r record
	var err error

	_, r.minor = m.Version()

	b := func(v *uint8) {
		if err == nil {
			*v, err = m.GetByte()
		}
	}
	w := func(v *uint16) {
		if err == nil {
			*v, err = m.GetWord()
		}
	}
	d := func(v *uint32) {
		if err == nil {
			*v, err = m.GetDword()
		}
	}
	a := func(v *[4]uint8) {
		for i := range v {
			b(&v[i])
		}
	}

	b(&r.pra)
	b(&r.prb)
	b(&r.ddra)
	b(&r.ddrb)
	w(&r.taCount)
	w(&r.tbCount)
	a(&r.todTime)
	b(&r.sdr)
	b(&r.ier)
	b(&r.cra)
	b(&r.crb)
	w(&r.taLatch)
	w(&r.tbLatch)
	b(&r.ifr)
	b(&r.flags)
	b(&r.shiftBits)
	a(&r.todAlarm)
	b(&r.icrAge)
	b(&r.todState)
	a(&r.todLatch)

	if r.minor >= 1 {
		d(&r.todTicks)
		d(&r.taDelta)
		d(&r.tbDelta)
		b(&r.oldPA)
		b(&r.oldPB)
		b(&r.shiftData)
	}

	return r, err
}

// ReadSnapshot restores the state of the CIA from the snapshot. The state of
// the CIA is unchanged if an error is returned.
func (c *CIA) ReadSnapshot(rd *snapshot.Reader) error {
	m, err := rd.Module(c.label)
	if err != nil {
		return curated.Errorf(SnapshotError, c.label, err)
	}

	major, minor := m.Version()
	if major != snapshotMajor {
		return curated.Errorf(SnapshotMajor, c.label, major)
	}
	if minor > snapshotMinor {
		return curated.Errorf(SnapshotVersion, c.label, major, minor, snapshotMajor, snapshotMinor)
	}

	r, err := decode(m)
	if err != nil {
		return curated.Errorf(SnapshotError, c.label, err)
	}

	c.apply(r)

	return nil
}

// apply a decoded record to the chip.
func (c *CIA) apply(r record) {
	clk := c.bus.Clock.Cycle()
	e := effective(clk, ReadOffset)

	c.regs[PRA] = r.pra
	c.regs[PRB] = r.prb
	c.regs[DDRA] = r.ddra
	c.regs[DDRB] = r.ddrb
	c.regs[TAL] = uint8(r.taLatch)
	c.regs[TAH] = uint8(r.taLatch >> 8)
	c.regs[TBL] = uint8(r.tbLatch)
	c.regs[TBH] = uint8(r.tbLatch >> 8)
	c.regs[SDR] = r.sdr
	c.regs[ICR] = 0
	c.regs[CRA] = r.cra &^ crLoad
	c.regs[CRB] = r.crb &^ crLoad

	c.ier = r.ier & 0x7f
	c.ifr = r.ifr & 0x7f

	// timers
	taState := timer.Stopped
	if r.cra&0x21 == crStart {
		taState = timer.Running
	}
	tbState := timer.Stopped
	switch {
	case r.crb&0x41 == 0x41:
		tbState = timer.CountTA
	case r.crb&0x61 == crStart:
		tbState = timer.Running
	}

	var taDelta, tbDelta uint32
	if r.taDelta > 0 {
		taDelta = r.taDelta - 1
	}
	if r.tbDelta > 0 {
		tbDelta = r.tbDelta - 1
	}

	c.ta.Restore(e, r.taLatch, r.taCount, taState, r.cra&crOneShot == crOneShot, r.flags&flagTAToggle == flagTAToggle, taDelta)
	c.tb.Restore(e, r.tbLatch, r.tbCount, tbState, r.crb&crOneShot == crOneShot, r.flags&flagTBToggle == flagTBToggle, tbDelta)

	if r.minor >= 1 {
		if r.flags&flagTAUnderflow == flagTAUnderflow {
			c.ta.RestoreUnderflow(e, false)
		}
		if r.flags&flagTBUnderflow == flagTBUnderflow {
			c.tb.RestoreUnderflow(e, r.crb&0x40 == 0x40)
		}
	}

	// shift register
	c.shiftBits = int(r.shiftBits)
	if r.minor >= 1 {
		c.shiftData = r.shiftData
		c.shiftStarted = r.flags&flagShifting == flagShifting
	} else {
		c.shiftData = r.sdr
		c.shiftStarted = c.shiftBits%16 != 0
	}

	// time of day
	c.tod.Time = r.todTime
	c.tod.Alarm = r.todAlarm
	c.tod.Latch = r.todLatch
	c.tod.Latched = r.todState&todLatched == todLatched
	c.tod.Stopped = r.todState&todStopped == todStopped
	c.tod.SetMatched(r.todState&todMatched == todMatched)

	ticks := c.tod.TicksPerTenth
	if r.minor >= 1 && r.todTicks > 0 {
		ticks = uint64(r.todTicks - 1)
	}
	c.alarmTOD.Set(e + ticks)

	if r.icrAge > 0 && e+128 >= uint64(r.icrAge) {
		c.lastICRRead = e + 128 - uint64(r.icrAge)
	} else {
		c.lastICRRead = 0
	}

	// port outputs
	if r.minor >= 1 {
		c.oldPA = r.oldPA
		c.oldPB = r.oldPB
	} else {
		c.oldPA = c.portA()
		c.oldPB = c.portB(e)
	}

	// the restored chip begins a new timeline
	c.dispatched = false

	c.rearm()
	c.alarmPulse.Unset()
	c.armPulse(e)
	c.updateLine(e)
}
