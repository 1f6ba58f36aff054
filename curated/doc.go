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

// Package curated is a helper package for errors that we expect to happen.
// Errors that originate in the emulation and which can be acted upon by the
// caller (a snapshot that cannot be loaded, for instance) are created with
// Errorf().
//
// The pattern given to Errorf() identifies the error. Packages export the
// patterns they use as constants so that callers can test for them:
//
//	const BadVersion = "snapshot: version %d.%d not supported"
//
//	err := curated.Errorf(BadVersion, 2, 0)
//	if curated.Is(err, BadVersion) {
//		fmt.Println("true")
//	}
//
// Has() searches the entire chain of wrapped curated errors:
//
//	f := curated.Errorf("cia1: %v", err)
//	curated.Is(f, BadVersion)  // false
//	curated.Has(f, BadVersion) // true
//
// Error messages are normalised by the removal of adjacent duplicate parts.
// This means that a function can prefix an error with its context without
// worrying whether the error it received already carries the same prefix.
//
// Errors that are not curated are unexpected. In the emulation core these
// indicate a programming error rather than a condition that can be handled.
package curated
