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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of time for the Random type.
type Clock interface {
	Cycle() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// source for NoRewind()
	src *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
		src: rand.New(rand.NewSource(baseSeed)),
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.clk.Cycle())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.clk.Cycle())))
}

// Rewindable returns a number in the range [0, n). The number is the same for
// every call made on the same cycle.
func (rnd *Random) Rewindable(n int) int {
	return rnd.rand().Intn(n)
}

// NoRewind returns a number in the range [0, n). The number does not depend
// on the current cycle.
func (rnd *Random) NoRewind(n int) int {
	if rnd.ZeroSeed {
		return rnd.rand().Intn(n)
	}
	return rnd.src.Intn(n)
}
