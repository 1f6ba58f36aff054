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

package cia_test

import (
	"testing"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/snapshot"
	"github.com/jetsetilly/gopher6526/test"
)

// a harness with both timers running, a pending TOD alarm and interrupts
// enabled.
func busyHarness(t *testing.T) *harness {
	h := newHarness(t)
	h.storeEffective(10, cia.ICR, 0x87)
	h.storeEffective(11, cia.CRB, 0x80)
	h.storeEffective(12, cia.TODTEN, 0x03)
	h.storeEffective(13, cia.CRB, 0x00)
	h.storeEffective(20, cia.TBL, 0x15)
	h.storeEffective(21, cia.TBH, 0x00)
	h.storeEffective(22, cia.CRB, 0x01)
	h.storeEffective(30, cia.DDRB, 0x0f)
	h.startTA(100, 7, 0x07)
	h.at(1230)
	return h
}

// compare every register of two chips for a number of cycles.
func lockstep(t *testing.T, a *harness, b *harness, cycles uint64) {
	t.Helper()

	end := a.clk.cycle + cycles
	for a.clk.cycle < end {
		for r := range uint16(cia.NumRegisters) {
			if !test.ExpectEquality(t, b.cia.Peek(r), a.cia.Peek(r), a.clk.cycle, cia.RegisterNames[r]) {
				return
			}
		}
		test.ExpectEquality(t, b.line.asserted, a.line.asserted, a.clk.cycle)

		next := a.clk.cycle + 1
		a.at(next)
		b.at(next)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	a := busyHarness(t)

	w := snapshot.NewWriter()
	test.DemandSuccess(t, a.cia.WriteSnapshot(w))

	b := newHarness(t)
	b.at(a.clk.cycle)
	test.DemandSuccess(t, b.cia.ReadSnapshot(w.Reader()))

	lockstep(t, a, b, 300)

	// the TOD alarm is raised in both chips at the same time
	ticks := a.cia.TOD().TicksPerTenth
	a.at(ticks * 3)
	b.at(ticks * 3)
	lockstep(t, a, b, 10)
	test.ExpectEquality(t, b.cia.Read(cia.ICR)&cia.IntTOD, a.cia.Read(cia.ICR)&cia.IntTOD)
}

func TestSnapshotOnTODTick(t *testing.T) {
	a := newHarness(t)

	// the first tick is due on this cycle and has not happened yet
	ticks := a.cia.TOD().TicksPerTenth
	a.at(ticks)

	w := snapshot.NewWriter()
	test.DemandSuccess(t, a.cia.WriteSnapshot(w))

	b := newHarness(t)
	b.at(a.clk.cycle)
	test.DemandSuccess(t, b.cia.ReadSnapshot(w.Reader()))

	lockstep(t, a, b, 3)
	test.ExpectEquality(t, a.cia.TOD().Time[0], uint8(0x01))
	test.ExpectEquality(t, b.cia.TOD().Time, a.cia.TOD().Time)
}

func TestSnapshotOneShotUnderflow(t *testing.T) {
	a := newHarness(t)
	a.startTA(100, 10, 0x0b)

	// the timer underflows and stops on this cycle
	a.at(112)

	w := snapshot.NewWriter()
	test.DemandSuccess(t, a.cia.WriteSnapshot(w))

	b := newHarness(t)
	b.at(a.clk.cycle)
	test.DemandSuccess(t, b.cia.ReadSnapshot(w.Reader()))

	test.ExpectEquality(t, b.cia.Peek(cia.TAL), uint8(0xff))
	test.ExpectEquality(t, b.cia.Peek(cia.TAH), uint8(0xff))
	test.ExpectEquality(t, b.cia.Peek(cia.PRB), uint8(0xff))

	lockstep(t, a, b, 5)
	test.ExpectEquality(t, b.cia.Peek(cia.TAL), uint8(10))
	test.ExpectEquality(t, b.cia.Peek(cia.PRB), uint8(0xbf))

	// the end of the pulse is seen by the host of both chips
	test.DemandSuccess(t, len(b.host.portB) > 0)
	test.ExpectEquality(t, b.host.portB[len(b.host.portB)-1], a.host.portB[len(a.host.portB)-1])
}

func TestSnapshotMinorZero(t *testing.T) {
	a := busyHarness(t)
	a.ins.Prefs.SnapshotMinor.Set(0)

	w := snapshot.NewWriter()
	test.DemandSuccess(t, a.cia.WriteSnapshot(w))

	r := w.Reader()
	m, err := r.Module("CIA1")
	test.DemandSuccess(t, err)
	major, minor := m.Version()
	test.ExpectEquality(t, major, uint8(1))
	test.ExpectEquality(t, minor, uint8(0))

	b := newHarness(t)
	b.at(a.clk.cycle)
	test.DemandSuccess(t, b.cia.ReadSnapshot(r))

	// without the 1.1 fields the timers are derived from the counters
	lockstep(t, a, b, 100)
}

func TestSnapshotVersion(t *testing.T) {
	h := busyHarness(t)

	before := make([]uint8, cia.NumRegisters)
	for r := range before {
		before[r] = h.cia.Peek(uint16(r))
	}

	unchanged := func() {
		t.Helper()
		for r := range before {
			test.ExpectEquality(t, h.cia.Peek(uint16(r)), before[r], cia.RegisterNames[r])
		}
	}

	// major version mismatch
	w := snapshot.NewWriter()
	m, _ := w.NewModule("CIA1", 2, 0)
	m.PutBytes(make([]byte, 64))
	err := h.cia.ReadSnapshot(w.Reader())
	test.ExpectSuccess(t, curated.Is(err, cia.SnapshotMajor))
	unchanged()

	// newer minor version
	w = snapshot.NewWriter()
	m, _ = w.NewModule("CIA1", 1, 2)
	m.PutBytes(make([]byte, 64))
	err = h.cia.ReadSnapshot(w.Reader())
	test.ExpectSuccess(t, curated.Is(err, cia.SnapshotVersion))
	unchanged()

	// truncated module
	w = snapshot.NewWriter()
	m, _ = w.NewModule("CIA1", 1, 1)
	m.PutBytes(make([]byte, 20))
	err = h.cia.ReadSnapshot(w.Reader())
	test.ExpectSuccess(t, curated.Is(err, cia.SnapshotError))
	test.ExpectSuccess(t, curated.Has(err, snapshot.ReadOutOfBounds))
	unchanged()

	// missing module
	w = snapshot.NewWriter()
	err = h.cia.ReadSnapshot(w.Reader())
	test.ExpectSuccess(t, curated.Has(err, snapshot.ModuleNotFound))
	unchanged()
}
