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

	"github.com/jetsetilly/gopher6526/hardware/alarm"
	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/instance"
	"github.com/jetsetilly/gopher6526/test"
)

type clock struct {
	cycle uint64
	rmw   bool
}

func (c *clock) Cycle() uint64 {
	return c.cycle
}

func (c *clock) RMW() bool {
	return c.rmw
}

type portWrite struct {
	cycle uint64
	data  uint8
}

type host struct {
	cia.NullHost

	inputA uint8
	inputB uint8

	portA      []portWrite
	portB      []portWrite
	serial     []uint8
	handshakes []uint64
	resets     int
	snapshots  int
}

func (h *host) StorePortA(cycle uint64, data uint8) {
	h.portA = append(h.portA, portWrite{cycle: cycle, data: data})
}

func (h *host) StorePortB(cycle uint64, data uint8) {
	h.portB = append(h.portB, portWrite{cycle: cycle, data: data})
}

func (h *host) ReadPortA() uint8 {
	return h.inputA
}

func (h *host) ReadPortB() uint8 {
	return h.inputB
}

func (h *host) PulseHandshake(cycle uint64) {
	h.handshakes = append(h.handshakes, cycle)
}

func (h *host) StoreSerialByte(data uint8) {
	h.serial = append(h.serial, data)
}

func (h *host) OnReset() {
	h.resets++
}

func (h *host) ReadInterruptSnapshot() {
	h.snapshots++
}

type lineChange struct {
	asserted bool
	cycle    uint64
}

type line struct {
	asserted bool
	changes  []lineChange
}

func (l *line) Set(asserted bool, cycle uint64) {
	l.asserted = asserted
	l.changes = append(l.changes, lineChange{asserted: asserted, cycle: cycle})
}

// the most recent change of the line
func (l *line) last() lineChange {
	if len(l.changes) == 0 {
		return lineChange{}
	}
	return l.changes[len(l.changes)-1]
}

type harness struct {
	clk  *clock
	ctx  *alarm.Context
	line *line
	host *host
	ins  *instance.Instance
	cia  *cia.CIA
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	// preferences are saved in the working directory
	t.Chdir(t.TempDir())

	h := &harness{
		clk:  &clock{},
		ctx:  alarm.NewContext("test"),
		line: &line{},
		host: &host{inputA: 0xff, inputB: 0xff},
	}

	var err error
	h.ins, err = instance.NewInstance(h.clk, nil)
	test.DemandSuccess(t, err)
	h.ins.Normalise()

	h.cia, err = cia.NewCIA(h.ins, "CIA1", cia.Bus{
		Clock:     h.clk,
		Scheduler: h.ctx,
		Line:      h.line,
		Host:      h.host,
	})
	test.DemandSuccess(t, err)

	return h
}

// move the clock forward to cycle. the alarms of every earlier cycle are
// dispatched. bus accesses made after the call happen on the cycle.
func (h *harness) at(cycle uint64) {
	for h.clk.cycle < cycle {
		h.ctx.Dispatch(h.clk.cycle)
		h.clk.cycle++
	}
}

// store data to the register so that the effective cycle of the store is
// the cycle specified.
func (h *harness) storeEffective(cycle uint64, address uint16, data uint8) {
	h.at(cycle + cia.StoreOffset)
	h.cia.Store(address, data)
}

// start timer A with the latch value in continuous mode. the start happens on
// the effective cycle.
func (h *harness) startTA(cycle uint64, latch uint16, cra uint8) {
	h.storeEffective(cycle-2, cia.TAL, uint8(latch))
	h.storeEffective(cycle-1, cia.TAH, uint8(latch>>8))
	h.storeEffective(cycle, cia.CRA, cra)
}
