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

package timer

import "fmt"

// State of the timer.
type State int

// List of valid State values.
const (
	Stopped State = iota
	Running

	// CountTA is only used by timer B. The counter is decremented by calls
	// to Decrement() rather than by the passing of cycles.
	CountTA
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case CountTA:
		return "count TA"
	}
	return "unknown"
}

// Timer is a single CIA interval timer.
type Timer struct {
	label string

	// the value loaded into the counter on underflow or on a force load
	Latch uint16

	// the state of the pulse/toggle output. the value is flipped on every
	// underflow
	Toggle bool

	// the timer stops after the next underflow
	OneShot bool

	state State

	// counter value when the timer is not in the Running state. when the
	// timer is running this is the value the counter was started with
	counter uint16

	// cycle of the next underflow. only valid in the Running state
	next uint64

	// cycle of the most recent underflow
	last        uint64
	underflowed bool

	// the most recent underflow was caused by Decrement()
	decremented bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(label string) *Timer {
	t := &Timer{label: label}
	t.Reset()
	return t
}

func (t *Timer) String() string {
	if t.state == Running {
		return fmt.Sprintf("%s: latch=%04x %s next=%d toggle=%v", t.label, t.Latch, t.state, t.next, t.Toggle)
	}
	return fmt.Sprintf("%s: latch=%04x %s counter=%04x toggle=%v", t.label, t.Latch, t.state, t.counter, t.Toggle)
}

// Label returns the label given to the timer when it was created.
func (t *Timer) Label() string {
	return t.label
}

// Reset timer to power-on state.
func (t *Timer) Reset() {
	t.Latch = 0xffff
	t.counter = 0xffff
	t.Toggle = false
	t.OneShot = false
	t.state = Stopped
	t.next = 0
	t.last = 0
	t.underflowed = false
	t.decremented = false
}

// State returns the current state of the timer.
func (t *Timer) State() State {
	return t.state
}

// Running returns true if the timer is counting cycles.
func (t *Timer) Running() bool {
	return t.state == Running
}

// SetLatchLo sets the low byte of the latch.
func (t *Timer) SetLatchLo(v uint8) {
	t.Latch = (t.Latch & 0xff00) | uint16(v)
}

// SetLatchHi sets the high byte of the latch.
func (t *Timer) SetLatchHi(v uint8) {
	t.Latch = (t.Latch & 0x00ff) | (uint16(v) << 8)
}

// Load copies the latch into the counter of a stopped timer. A timer in the
// CountTA state keeps its count. Use ForceLoad() for a running timer.
func (t *Timer) Load() {
	if t.state == Stopped {
		t.counter = t.Latch
	}
}

// Next returns the cycle of the next underflow. The second return value is
// false if the timer is not counting cycles.
func (t *Timer) Next() (uint64, bool) {
	return t.next, t.state == Running
}

// Underflowed returns true if the timer underflowed on the specified cycle.
func (t *Timer) Underflowed(cycle uint64) bool {
	return t.underflowed && t.last == cycle
}

// LastUnderflow returns the cycle of the most recent underflow. The second
// return value is false if the timer has never underflowed.
func (t *Timer) LastUnderflow() (uint64, bool) {
	return t.last, t.underflowed
}

// Count returns the value of the counter at the specified cycle. Underflows
// up to and including the cycle must have been resolved with Resolve().
func (t *Timer) Count(cycle uint64) uint16 {
	if t.Underflowed(cycle) && !t.decremented {
		return 0xffff
	}

	if t.state != Running {
		return t.counter
	}

	// the timer was started or reloaded less than one cycle ago
	if cycle+1 >= t.next {
		return 0
	}
	v := t.next - 1 - cycle
	if v > uint64(t.counter) {
		return t.counter
	}
	return uint16(v)
}

// period of a continuously running timer.
func (t *Timer) period() uint64 {
	return uint64(t.Latch) + 2
}

// Resolve all underflows that happen at or before the specified cycle.
// Returns the number of underflows. A one-shot timer stops on the first
// underflow and is reloaded from the latch.
func (t *Timer) Resolve(cycle uint64) int {
	if t.state != Running || t.next > cycle {
		return 0
	}

	t.underflowed = true
	t.decremented = false

	if t.OneShot {
		t.last = t.next
		t.counter = t.Latch
		t.state = Stopped
		t.Toggle = !t.Toggle
		return 1
	}

	p := t.period()
	k := (cycle - t.next) / p
	t.last = t.next + k*p
	t.next = t.last + p
	t.counter = t.Latch

	n := int(k + 1)
	if n&0x01 == 0x01 {
		t.Toggle = !t.Toggle
	}
	return n
}

// Decrement the counter of a timer in the CountTA state n times. The cycle
// is the cycle on which the last decrement happens. Returns the number of
// underflows.
func (t *Timer) Decrement(cycle uint64, n int) int {
	if t.state != CountTA {
		return 0
	}

	u := 0
	for range n {
		if t.counter == 0 {
			t.counter = t.Latch
			t.Toggle = !t.Toggle
			u++
			if t.OneShot {
				t.state = Stopped
				break
			}
		} else {
			t.counter--
		}
	}

	if u > 0 {
		t.last = cycle
		t.underflowed = true
		t.decremented = true
	}

	return u
}

// Control changes the state of the timer. If load is true the latch is
// copied into the counter. The timer must have been resolved up to the
// cycle.
func (t *Timer) Control(cycle uint64, state State, oneShot bool, load bool) {
	prev := t.state
	t.OneShot = oneShot

	// a timer leaving the running state keeps the current count
	if prev == Running && state != Running {
		t.counter = t.Count(cycle)
		if t.Underflowed(cycle) {
			t.counter = t.Latch
		}
	}

	if load {
		t.counter = t.Latch
	}

	if prev == Stopped && state != Stopped {
		t.Toggle = true
	}

	t.state = state

	if state == Running {
		if prev != Running || load {
			t.start(cycle)
		}
	}
}

// Start the timer counting cycles.
func (t *Timer) Start(cycle uint64) {
	t.Control(cycle, Running, t.OneShot, false)
}

// Stop the timer. The counter keeps its current value.
func (t *Timer) Stop(cycle uint64) {
	t.Control(cycle, Stopped, t.OneShot, false)
}

// ForceLoad copies the latch into the counter. If the timer is running the
// next underflow is rescheduled.
func (t *Timer) ForceLoad(cycle uint64) {
	t.Control(cycle, t.state, t.OneShot, true)
}

// schedule the next underflow from the current counter value.
func (t *Timer) start(cycle uint64) {
	t.next = cycle + uint64(t.counter) + 2
}

// Output returns the level of the PB6/PB7 output for the timer. In toggle
// mode the output follows the toggle bit, otherwise the output is high for
// the single cycle of an underflow.
func (t *Timer) Output(cycle uint64, toggleMode bool) bool {
	if toggleMode {
		return t.Toggle
	}
	return t.Underflowed(cycle)
}

// Delta returns the number of cycles from the specified cycle until the next
// underflow. The second return value is false if the timer is not counting
// cycles or the underflow has already happened.
func (t *Timer) Delta(cycle uint64) (uint32, bool) {
	if t.state != Running || t.next < cycle {
		return 0, false
	}
	return uint32(t.next - cycle), true
}

// Restore the timer from saved values. A delta of zero means the next
// underflow is derived from the counter.
func (t *Timer) Restore(cycle uint64, latch uint16, counter uint16, state State, oneShot bool, toggle bool, delta uint32) {
	t.Latch = latch
	t.OneShot = oneShot
	t.Toggle = toggle
	t.state = state
	t.underflowed = false
	t.decremented = false
	t.last = 0

	if state != Running {
		t.counter = counter
		t.next = 0
		return
	}

	if delta > 0 {
		t.next = cycle + uint64(delta)
	} else {
		t.next = cycle + uint64(counter) + 1
	}

	// a timer saved during an underflow cycle reads as 0xffff and continues
	// from the latch on the next cycle
	if counter == 0xffff && delta > 0 && uint64(delta) == t.period() {
		t.counter = latch
		t.last = cycle
		t.underflowed = true
		return
	}

	t.counter = counter
	if v := t.next - 1 - cycle; v > uint64(t.counter) && v <= 0xffff {
		t.counter = uint16(v)
	}
}

// RestoreUnderflow marks the timer as having underflowed on the cycle. Used
// for a timer saved on the cycle of an underflow. The decremented argument
// says whether the underflow was caused by Decrement().
func (t *Timer) RestoreUnderflow(cycle uint64, decremented bool) {
	t.last = cycle
	t.underflowed = true
	t.decremented = decremented
}
