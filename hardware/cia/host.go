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

import "github.com/jetsetilly/gopher6526/hardware/alarm"

// Host is the machine specific wiring of the CIA.
type Host interface {
	// the output of a port has changed
	StorePortA(cycle uint64, data uint8)
	StorePortB(cycle uint64, data uint8)

	// the input of a port
	ReadPortA() uint8
	ReadPortB() uint8

	// the PC line is pulsed whenever PRB is written
	PulseHandshake(cycle uint64)

	// the shift register has started to send a byte
	StoreSerialByte(data uint8)

	// called at the end of Reset()
	OnReset()

	// called at the start of an ICR read
	ReadInterruptSnapshot()
}

// NullHost implements the Host interface. Inputs float high and outputs go
// nowhere. Useful for embedding in a type that only needs some of the Host
// functions.
type NullHost struct{}

// StorePortA implements the Host interface.
func (NullHost) StorePortA(cycle uint64, data uint8) {}

// StorePortB implements the Host interface.
func (NullHost) StorePortB(cycle uint64, data uint8) {}

// ReadPortA implements the Host interface.
func (NullHost) ReadPortA() uint8 { return 0xff }

// ReadPortB implements the Host interface.
func (NullHost) ReadPortB() uint8 { return 0xff }

// PulseHandshake implements the Host interface.
func (NullHost) PulseHandshake(cycle uint64) {}

// StoreSerialByte implements the Host interface.
func (NullHost) StoreSerialByte(data uint8) {}

// OnReset implements the Host interface.
func (NullHost) OnReset() {}

// ReadInterruptSnapshot implements the Host interface.
func (NullHost) ReadInterruptSnapshot() {}

// Clock is the system clock.
type Clock interface {
	// the current cycle. the value must never decrease
	Cycle() uint64

	// the CPU is in the write cycles of a read-modify-write instruction
	RMW() bool
}

// Scheduler creates the alarms used by the CIA.
type Scheduler interface {
	NewAlarm(name string, callback func(cycle uint64)) *alarm.Alarm
}

// Line is the interrupt line driven by the CIA.
type Line interface {
	Set(asserted bool, cycle uint64)
}

type nullLine struct{}

func (nullLine) Set(asserted bool, cycle uint64) {}

// Bus collates the connections between the CIA and the rest of the machine.
// Clock and Scheduler are required. A nil Line or Host is replaced with an
// implementation that does nothing.
type Bus struct {
	Clock     Clock
	Scheduler Scheduler
	Line      Line
	Host      Host
}
