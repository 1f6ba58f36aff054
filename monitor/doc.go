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

// Package monitor is a single key interactive monitor for a running machine.
// The terminal is put into cbreak mode so that each key press is acted upon
// immediately:
//
//	s	step one cycle
//	n	advance to the cycle after the next alarm
//	r	run for a number of cycles
//	p	print the state of the machine
//	i	print the state of the interrupt lines
//	t	toggle the trace of timer and interrupt events
//	l	print the tail of the log
//	h	help
//	q	quit
//
// The monitor only runs if the input is a terminal.
package monitor
