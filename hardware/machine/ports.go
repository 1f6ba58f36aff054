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

	"github.com/jetsetilly/gopher6526/hardware/instance"
)

// Port identifies one of the two ports of a CIA.
type Port int

// List of valid Port values.
const (
	PortA Port = iota
	PortB
)

func (p Port) String() string {
	switch p {
	case PortA:
		return "port A"
	case PortB:
		return "port B"
	}
	return "unknown port"
}

// PortObserver is notified of every change to the output of a port.
type PortObserver interface {
	PortChanged(chip string, port Port, cycle uint64, data uint8)
}

// the number of serial bytes remembered by Ports.
const maxSerial = 256

// Ports is the device side of the ports of a single CIA. It implements the
// cia.Host interface.
type Ports struct {
	ins   *instance.Instance
	label string

	// pins driven by a device. the remaining pins float high or, if the
	// randpins preference is set, read as random values
	ConnectedA uint8
	ConnectedB uint8

	// the level of the driven pins
	InputA uint8
	InputB uint8

	// the most recent output of each port
	OutputA uint8
	OutputB uint8

	// the number of times the PC line has been pulsed and the cycle of the
	// most recent pulse
	Handshakes    int
	LastHandshake uint64

	// bytes sent by the shift register. only the most recent bytes are kept
	Serial []uint8

	Resets   int
	ICRReads int

	observers []PortObserver
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(ins *instance.Instance, label string) *Ports {
	return &Ports{
		ins:     ins,
		label:   label,
		OutputA: 0xff,
		OutputB: 0xff,
	}
}

func (p *Ports) String() string {
	return fmt.Sprintf("%s: PA=%02x PB=%02x", p.label, p.OutputA, p.OutputB)
}

// AddObserver adds an observer to the list of observers notified of port
// output changes.
func (p *Ports) AddObserver(o PortObserver) {
	p.observers = append(p.observers, o)
}

func (p *Ports) notify(port Port, cycle uint64, data uint8) {
	for _, o := range p.observers {
		o.PortChanged(p.label, port, cycle, data)
	}
}

// StorePortA implements the cia.Host interface.
func (p *Ports) StorePortA(cycle uint64, data uint8) {
	p.OutputA = data
	p.notify(PortA, cycle, data)
}

// StorePortB implements the cia.Host interface.
func (p *Ports) StorePortB(cycle uint64, data uint8) {
	p.OutputB = data
	p.notify(PortB, cycle, data)
}

// the value of the pins that are not driven by a device.
func (p *Ports) floating() uint8 {
	if p.ins.Prefs.RandomPins.Get().(bool) {
		return uint8(p.ins.Random.Rewindable(0x100))
	}
	return 0xff
}

// ReadPortA implements the cia.Host interface.
func (p *Ports) ReadPortA() uint8 {
	return p.InputA&p.ConnectedA | p.floating()&^p.ConnectedA
}

// ReadPortB implements the cia.Host interface.
func (p *Ports) ReadPortB() uint8 {
	return p.InputB&p.ConnectedB | p.floating()&^p.ConnectedB
}

// PulseHandshake implements the cia.Host interface.
func (p *Ports) PulseHandshake(cycle uint64) {
	p.Handshakes++
	p.LastHandshake = cycle
}

// StoreSerialByte implements the cia.Host interface.
func (p *Ports) StoreSerialByte(data uint8) {
	if len(p.Serial) >= maxSerial {
		p.Serial = p.Serial[1:]
	}
	p.Serial = append(p.Serial, data)
}

// OnReset implements the cia.Host interface.
func (p *Ports) OnReset() {
	p.Resets++
	p.OutputA = 0xff
	p.OutputB = 0xff
}

// ReadInterruptSnapshot implements the cia.Host interface.
func (p *Ports) ReadInterruptSnapshot() {
	p.ICRReads++
}
