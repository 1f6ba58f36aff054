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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopher6526/hardware/cia/timer"
	"github.com/jetsetilly/gopher6526/test"
)

func TestContinuous(t *testing.T) {
	tm := timer.NewTimer("TA")
	tm.SetLatchLo(0x05)
	tm.SetLatchHi(0x00)
	test.ExpectEquality(t, tm.Latch, uint16(5))

	tm.Control(1000, timer.Running, false, true)
	test.ExpectSuccess(t, tm.Running())
	test.ExpectSuccess(t, tm.Toggle)

	next, ok := tm.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, next, uint64(1007))

	test.ExpectEquality(t, tm.Count(1001), uint16(5))
	test.ExpectEquality(t, tm.Count(1003), uint16(3))
	test.ExpectEquality(t, tm.Count(1006), uint16(0))

	test.ExpectEquality(t, tm.Resolve(1006), 0)
	test.ExpectEquality(t, tm.Resolve(1007), 1)
	test.ExpectEquality(t, tm.Count(1007), uint16(0xffff))
	test.ExpectEquality(t, tm.Count(1008), uint16(5))
	test.ExpectSuccess(t, tm.Underflowed(1007))
	test.ExpectFailure(t, tm.Toggle)

	next, _ = tm.Next()
	test.ExpectEquality(t, next, uint64(1014))

	// two underflows at once, 1014 and 1021
	test.ExpectEquality(t, tm.Resolve(1025), 2)
	last, ok := tm.LastUnderflow()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, last, uint64(1021))
	next, _ = tm.Next()
	test.ExpectEquality(t, next, uint64(1028))
	test.ExpectEquality(t, tm.Count(1025), uint16(2))
	test.ExpectFailure(t, tm.Toggle)
}

func TestPeriod(t *testing.T) {
	for _, l := range []uint16{0, 1, 2, 100, 0x1234, 0xffff} {
		tm := timer.NewTimer("TA")
		tm.Latch = l
		tm.Control(50, timer.Running, false, true)

		expected := uint64(50) + uint64(l) + 2
		for range 3 {
			next, ok := tm.Next()
			test.ExpectSuccess(t, ok, l)
			test.ExpectEquality(t, next, expected, l)
			test.ExpectEquality(t, tm.Resolve(next-1), 0, l)
			test.ExpectEquality(t, tm.Resolve(next), 1, l)
			expected += uint64(l) + 2
		}
	}
}

func TestOneShot(t *testing.T) {
	tm := timer.NewTimer("TA")
	tm.Latch = 3
	tm.Control(0, timer.Running, true, true)

	next, _ := tm.Next()
	test.ExpectEquality(t, next, uint64(5))

	// only one underflow no matter how late the resolution
	test.ExpectEquality(t, tm.Resolve(100), 1)
	test.ExpectEquality(t, tm.State(), timer.Stopped)
	test.ExpectEquality(t, tm.Count(5), uint16(0xffff))
	test.ExpectEquality(t, tm.Count(6), uint16(3))
	test.ExpectEquality(t, tm.Resolve(200), 0)

	_, ok := tm.Next()
	test.ExpectFailure(t, ok)
}

func TestStopFreezesCount(t *testing.T) {
	tm := timer.NewTimer("TA")
	tm.Latch = 100
	tm.Control(0, timer.Running, false, true)

	tm.Stop(10)
	test.ExpectEquality(t, tm.Count(10), uint16(91))
	test.ExpectEquality(t, tm.Count(50), uint16(91))

	tm.Start(50)
	next, _ := tm.Next()
	test.ExpectEquality(t, next, uint64(143))
	test.ExpectEquality(t, tm.Count(51), uint16(91))
}

func TestForceLoad(t *testing.T) {
	tm := timer.NewTimer("TA")
	tm.Latch = 10
	tm.Control(0, timer.Running, false, true)
	tm.ForceLoad(5)

	next, _ := tm.Next()
	test.ExpectEquality(t, next, uint64(17))
	test.ExpectEquality(t, tm.Count(6), uint16(10))

	// load on a stopped timer
	tm.Stop(8)
	tm.Latch = 20
	tm.Load()
	test.ExpectEquality(t, tm.Count(9), uint16(20))
}

func TestCascade(t *testing.T) {
	tm := timer.NewTimer("TB")
	tm.Latch = 2
	tm.Control(0, timer.CountTA, false, true)

	_, ok := tm.Next()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, tm.Resolve(100), 0)

	test.ExpectEquality(t, tm.Decrement(10, 1), 0)
	test.ExpectEquality(t, tm.Count(10), uint16(1))
	test.ExpectEquality(t, tm.Decrement(20, 2), 1)
	test.ExpectSuccess(t, tm.Underflowed(20))
	test.ExpectEquality(t, tm.Count(21), uint16(2))

	// a new latch value does not disturb the count
	test.ExpectEquality(t, tm.Decrement(25, 1), 0)
	tm.Latch = 9
	tm.Load()
	test.ExpectEquality(t, tm.Count(26), uint16(1))

	// one-shot stops on the first underflow
	tm.Control(30, timer.CountTA, true, true)
	test.ExpectEquality(t, tm.Decrement(40, 10), 1)
	test.ExpectEquality(t, tm.State(), timer.Stopped)
}

func TestOutput(t *testing.T) {
	tm := timer.NewTimer("TA")
	tm.Latch = 1
	tm.Control(0, timer.Running, false, true)

	// first underflow is at cycle 3
	tm.Resolve(3)
	test.ExpectSuccess(t, tm.Output(3, false))
	test.ExpectFailure(t, tm.Output(4, false))
	test.ExpectFailure(t, tm.Output(4, true))
	tm.Resolve(6)
	test.ExpectSuccess(t, tm.Output(6, true))
}

func TestRestore(t *testing.T) {
	a := timer.NewTimer("TA")
	a.Latch = 30
	a.Control(100, timer.Running, false, true)
	a.Resolve(150)

	count := a.Count(150)
	delta, ok := a.Delta(150)
	test.DemandSuccess(t, ok)

	b := timer.NewTimer("TA")
	b.Restore(150, a.Latch, count, a.State(), a.OneShot, a.Toggle, delta)

	for c := uint64(151); c < 250; c++ {
		test.ExpectEquality(t, b.Resolve(c), a.Resolve(c), c)
		test.ExpectEquality(t, b.Count(c), a.Count(c), c)
	}

	// no delta. the next underflow is derived from the counter
	c := timer.NewTimer("TA")
	c.Restore(150, 30, count, timer.Running, false, false, 0)
	next, _ := c.Next()
	test.ExpectEquality(t, next, uint64(150)+uint64(delta))
}

func TestRestoreUnderflow(t *testing.T) {
	a := timer.NewTimer("TA")
	a.Latch = 10
	a.Control(100, timer.Running, true, true)
	test.ExpectEquality(t, a.Resolve(112), 1)
	test.ExpectEquality(t, a.State(), timer.Stopped)
	test.ExpectEquality(t, a.Count(112), uint16(0xffff))

	b := timer.NewTimer("TA")
	b.Restore(112, a.Latch, a.Latch, a.State(), a.OneShot, a.Toggle, 0)
	b.RestoreUnderflow(112, false)
	test.ExpectEquality(t, b.Count(112), uint16(0xffff))
	test.ExpectSuccess(t, b.Output(112, false))
	test.ExpectEquality(t, b.Count(113), uint16(10))
	test.ExpectFailure(t, b.Output(113, false))

	// an underflow caused by a decrement reads as the reloaded count
	c := timer.NewTimer("TB")
	c.Restore(50, 4, 4, timer.CountTA, false, false, 0)
	c.RestoreUnderflow(50, true)
	test.ExpectEquality(t, c.Count(50), uint16(4))
	test.ExpectSuccess(t, c.Underflowed(50))
}
