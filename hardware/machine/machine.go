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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/alarm"
	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/instance"
	"github.com/jetsetilly/gopher6526/hardware/interrupt"
	"github.com/jetsetilly/gopher6526/hardware/preferences"
	"github.com/jetsetilly/gopher6526/logger"
)

// Sentinal error patterns.
const (
	UnmappedAddress = "machine: unmapped address (%#04x)"
	MachineError    = "machine: %v"
)

// base addresses of the two chips.
const (
	CIA1Origin = 0xdc00
	CIA2Origin = 0xdd00
)

// Machine is the main container for the emulated components.
type Machine struct {
	Instance *instance.Instance

	Clock      *Clock
	Alarms     *alarm.Context
	Interrupts *interrupt.Controller

	// CIA1 drives the IRQ line and CIA2 drives the NMI line
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	// the devices attached to the ports of each chip
	Ports1 *Ports
	Ports2 *Ports
}

// NewMachine creates a new machine and everything associated with the
// hardware. The prefs argument can be nil, in which case a new set of
// preferences will be created.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	m := &Machine{
		Clock:      &Clock{},
		Alarms:     alarm.NewContext("machine"),
		Interrupts: interrupt.NewController(),
	}

	var err error

	m.Instance, err = instance.NewInstance(m.Clock, prefs)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	m.Ports1 = NewPorts(m.Instance, "CIA1")
	m.CIA1, err = cia.NewCIA(m.Instance, "CIA1", cia.Bus{
		Clock:     m.Clock,
		Scheduler: m.Alarms,
		Line:      m.Interrupts.NewSource("CIA1", interrupt.IRQ),
		Host:      m.Ports1,
	})
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	m.Ports2 = NewPorts(m.Instance, "CIA2")
	m.CIA2, err = cia.NewCIA(m.Instance, "CIA2", cia.Bus{
		Clock:     m.Clock,
		Scheduler: m.Alarms,
		Line:      m.Interrupts.NewSource("CIA2", interrupt.NMI),
		Host:      m.Ports2,
	})
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	logger.Logf(m.Instance, "machine", "created with %s clock", m.Instance.Prefs.Spec())

	return m, nil
}

func (m *Machine) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "cycle %s\n", m.Clock)
	fmt.Fprintf(&s, "%s\n%s\n", m.CIA1, m.CIA2)
	s.WriteString(m.Interrupts.String())
	return s.String()
}

// Reset pulls the RES line of both chips low. The clock is not reset.
func (m *Machine) Reset() {
	m.Interrupts.Reset()
	m.CIA1.Reset()
	m.CIA2.Reset()
	logger.Logf(m.Instance, "machine", "reset at cycle %d", m.Clock.cycle)
}

// Cycle returns the current cycle of the machine.
func (m *Machine) Cycle() uint64 {
	return m.Clock.cycle
}

// the chip and register for an address.
func (m *Machine) decode(address uint16) (*cia.CIA, uint16, error) {
	switch address & 0xff00 {
	case CIA1Origin:
		return m.CIA1, address & 0x0f, nil
	case CIA2Origin:
		return m.CIA2, address & 0x0f, nil
	}
	return nil, 0, curated.Errorf(UnmappedAddress, address)
}

// Store data to the address on the current cycle.
func (m *Machine) Store(address uint16, data uint8) error {
	c, reg, err := m.decode(address)
	if err != nil {
		return err
	}
	c.Store(reg, data)
	return nil
}

// Read the address on the current cycle.
func (m *Machine) Read(address uint16) (uint8, error) {
	c, reg, err := m.decode(address)
	if err != nil {
		return 0, err
	}
	return c.Read(reg), nil
}

// Peek returns the value at the address without side effects.
func (m *Machine) Peek(address uint16) (uint8, error) {
	c, reg, err := m.decode(address)
	if err != nil {
		return 0, err
	}
	return c.Peek(reg), nil
}

// ReadModifyWrite performs the bus accesses of a read-modify-write
// instruction, such as INC or ASL, on the address. The read happens on the
// current cycle, the unmodified value is written back on the next cycle and
// the modified value on the cycle after that. The clock is left on the cycle
// of the final write.
func (m *Machine) ReadModifyWrite(address uint16, f func(uint8) uint8) error {
	c, reg, err := m.decode(address)
	if err != nil {
		return err
	}

	v := c.Read(reg)
	m.Advance(2)

	m.Clock.rmw = true
	defer func() {
		m.Clock.rmw = false
	}()
	c.Store(reg, f(v))

	return nil
}
