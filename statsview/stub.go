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

//go:build !statsview

package statsview

import "io"

// DefaultAddress is empty without the statsview build constraint.
const DefaultAddress = ""

// Launch does nothing without the statsview build constraint.
func Launch(output io.Writer, address string) {
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
