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

import (
	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/govern"
)

// PerformanceBrake is the number of cycles the machine advances between
// calls to the continueCheck() function in Run().
const PerformanceBrake = 100

// AdvanceTo moves the clock forward to the cycle. Alarms for every cycle
// before the target cycle are dispatched, in order. Bus accesses made after
// the call happen on the target cycle.
//
// Cycles without an alarm are skipped over.
func (m *Machine) AdvanceTo(cycle uint64) {
	for m.Clock.cycle < cycle {
		next, ok := m.Alarms.Next()
		if !ok || next >= cycle {
			m.Clock.cycle = cycle
			return
		}
		if next > m.Clock.cycle {
			m.Clock.cycle = next
		}
		m.Alarms.Dispatch(m.Clock.cycle)
		m.Clock.cycle++
	}
}

// Advance moves the clock forward by the number of cycles.
func (m *Machine) Advance(cycles uint64) {
	m.AdvanceTo(m.Clock.cycle + cycles)
}

// Step the machine by one cycle.
func (m *Machine) Step() {
	m.Advance(1)
}

// Run sets the machine running as quickly as possible. The continueCheck()
// function is called every PerformanceBrake cycles. A nil continueCheck()
// means the machine will run forever.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			m.Advance(PerformanceBrake)
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported machine state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the machine for the specified number of cycles. The
// continueCheck() function is called as it is for Run() and can end the run
// early. It can be nil.
func (m *Machine) RunForCycles(cycles uint64, continueCheck func(cycle uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ uint64) (govern.State, error) { return govern.Running, nil }
	}

	end := m.Clock.cycle + cycles

	state := govern.Running
	for m.Clock.cycle < end && state != govern.Ending {
		switch state {
		case govern.Running:
			m.Advance(min(end-m.Clock.cycle, PerformanceBrake))
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported machine state (%s) in RunForCycles() function", state)
		}

		var err error
		state, err = continueCheck(m.Clock.cycle)
		if err != nil {
			return err
		}
	}

	return nil
}
