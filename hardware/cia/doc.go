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

// Package cia emulates the MOS 6526 Complex Interface Adapter. The CIA has two
// 8-bit I/O ports, two 16-bit interval timers, a BCD time-of-day clock, a
// serial shift register and an interrupt control register that combines the
// interrupt flags of all of these into a single interrupt line.
//
// The CIA is not stepped every cycle. The state of the timers is derived on
// demand from the cycle at which the next underflow will happen, and alarms
// are used to make sure that underflows are seen by the rest of the machine at
// the correct time. See the timer package for the timing model.
//
// The CIA is connected to the rest of the machine by the Bus type. The Host
// interface supplies the machine specific wiring of the two ports and the
// serial line.
//
// Bus accesses are made with Store(), Read() and Peek(). The cycle of the
// access is taken from the Clock. Writes happen one cycle later than the
// clock suggests, reads happen on the cycle of the clock.
package cia
