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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes and sub-modes,
// each with its own set of flags.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SNAPSHOT", "MONITOR")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected sub-mode (or the default
// sub-mode, which is the first in the list). The mode can then call
// NewMode(), add its own flags and sub-modes, and call Parse() again. Path()
// returns every mode found so far, for example "SNAPSHOT/INFO".
//
// Non-flag arguments that remain after parsing are available with
// RemainingArgs() and GetArg().
package modalflag
