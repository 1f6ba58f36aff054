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

// Package machine is the base package for a headless two-CIA machine. It
// contains everything required to exercise the CIA emulation outside of a
// complete computer.
//
// The Machine type is the root of the emulation. It owns the system clock,
// the alarm context, the interrupt controller and two CIA chips. The first
// CIA drives the IRQ line and the second CIA drives the NMI line, as they do
// in the Commodore 64.
//
// The chips are mapped into a 16-bit address space:
//
//	CIA1	0xdc00 - 0xdcff
//	CIA2	0xdd00 - 0xddff
//
// The machine can be run continuously (with optional callback to check for
// continuation) or it can be stepped cycle by cycle.
package machine
