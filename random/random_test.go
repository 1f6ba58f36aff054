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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher6526/random"
	"github.com/jetsetilly/gopher6526/test"
)

type clock struct {
	cycle uint64
}

func (c *clock) Cycle() uint64 {
	return c.cycle
}

func TestRandom(t *testing.T) {
	clk := &clock{cycle: 1000}
	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
		clk.cycle++
	}

	// same cycle, same number
	test.ExpectEquality(t, a.Rewindable(1000), a.Rewindable(1000))

	for i := 1; i < 256; i++ {
		v := a.NoRewind(i)
		test.ExpectSuccess(t, v >= 0 && v < i)
	}
}
