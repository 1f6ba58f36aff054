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

// Package clocks defines the frequency of the system clock that drives the
// CIA in the supported machine types. The CIA is clocked by the CPU clock
// (the phi2 signal).
//
// The TOD clock of a real CIA is driven by the mains frequency. This is not
// emulated and TOD ticks are derived from the system clock instead.
package clocks

import "strings"

// Clock frequencies in MHz.
const (
	PAL  = 0.985248
	NTSC = 1.022727
)

// Specifications that can be passed to Frequency().
const (
	SpecPAL  = "PAL"
	SpecNTSC = "NTSC"
)

// Frequency returns the clock frequency in MHz for the named specification.
// The second return value is false if the specification is not recognised.
func Frequency(spec string) (float64, bool) {
	switch strings.ToUpper(strings.TrimSpace(spec)) {
	case SpecPAL:
		return PAL, true
	case SpecNTSC:
		return NTSC, true
	}
	return 0, false
}

// TicksPerTenth returns the number of system clock cycles in one tenth of a
// second for the named specification. Unrecognised specifications are
// treated as PAL.
func TicksPerTenth(spec string) uint64 {
	f, ok := Frequency(spec)
	if !ok {
		f = PAL
	}
	return uint64(f * 100000)
}
