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

package machine

import "fmt"

// Clock is the system clock of the machine. It implements the cia.Clock and
// random.Clock interfaces.
type Clock struct {
	cycle uint64
	rmw   bool
}

func (clk *Clock) String() string {
	if clk.rmw {
		return fmt.Sprintf("%d (rmw)", clk.cycle)
	}
	return fmt.Sprintf("%d", clk.cycle)
}

// Cycle implements the cia.Clock interface.
func (clk *Clock) Cycle() uint64 {
	return clk.cycle
}

// RMW implements the cia.Clock interface.
func (clk *Clock) RMW() bool {
	return clk.rmw
}
