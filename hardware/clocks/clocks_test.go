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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/test"
)

func TestTicksPerTenth(t *testing.T) {
	test.ExpectEquality(t, clocks.TicksPerTenth("PAL"), uint64(98524))
	test.ExpectEquality(t, clocks.TicksPerTenth("ntsc"), uint64(102272))
	test.ExpectEquality(t, clocks.TicksPerTenth("SECAM"), uint64(98524))

	_, ok := clocks.Frequency("SECAM")
	test.ExpectFailure(t, ok)
	f, ok := clocks.Frequency(" pal ")
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, f, 0.985, 0.01)
}
