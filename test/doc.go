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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test on failure and should be used when the rest
// of the test depends on the outcome.
//
// ExpectSuccess and ExpectFailure support bool and error values. A nil value
// is considered a success. This is not how nil should be interpreted in all
// situations but because errors use nil to indicate no error we need to
// interpret it in this way.
//
// The RingWriter and CappedWriter types are io.Writer implementations that
// are useful when checking the output of the logger.
package test
