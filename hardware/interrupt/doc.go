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

// Package interrupt implements the interrupt lines of the host CPU. More than
// one chip can drive the same line. The IRQ line is level sensitive and is
// asserted while any of its sources is asserted. The NMI line is edge
// sensitive and latches a pending NMI when the first of its sources is
// asserted.
//
// Modelling when the CPU samples the lines is the job of the CPU emulation.
// The controller records the cycle of each transition so that the CPU can
// apply its own polling delay.
package interrupt
