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

// Package timer implements one of the two 16-bit interval timers of the CIA.
//
// The timer is not stepped every cycle. Instead it records the cycle at which
// the next underflow will happen and derives the current counter value from
// that when asked. The CIA arms an alarm for the cycle returned by Next() and
// calls Resolve() when the alarm fires, or earlier when the CIA is accessed.
//
// All cycles are effective cycles. A timer started at cycle c with counter C
// reads C at c+1, reaches zero at c+C+1, reads 0xffff for the single cycle
// c+C+2 and is reloaded from the latch on the cycle after that. The period of
// a continuously running timer is therefore latch+2 cycles.
package timer
