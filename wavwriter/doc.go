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

// Package wavwriter records the timer outputs of a CIA as audio. The PB6 and
// PB7 pins of port B carry the timer A and timer B outputs when the control
// registers ask for it. Programs that use the timers as a tone generator can
// be heard by writing the levels of those pins to a WAV file.
//
// Note that the changes to the pins are buffered in memory in their entirity,
// and written to disk when Write() is called. It is therefore probably only
// suitable for testing purposes.
package wavwriter
