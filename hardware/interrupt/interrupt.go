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

package interrupt

import (
	"fmt"
	"strings"
)

// Kind of interrupt line.
type Kind int

// List of valid Kind values.
const (
	IRQ Kind = iota
	NMI
)

func (k Kind) String() string {
	switch k {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return "unknown"
}

// Line is a single source of an interrupt line.
type Line struct {
	ctrl *Controller
	name string
	kind Kind
	bit  uint32

	asserted bool
	cycle    uint64
}

func (l *Line) String() string {
	return fmt.Sprintf("%s (%s): %v @ %d", l.name, l.kind, l.asserted, l.cycle)
}

// Asserted returns true if the source is asserting the line and the cycle of
// the most recent change.
func (l *Line) Asserted() (bool, uint64) {
	return l.asserted, l.cycle
}

// Set the state of the source. Setting the same state twice has no effect.
func (l *Line) Set(asserted bool, cycle uint64) {
	if l.asserted == asserted {
		return
	}
	l.asserted = asserted
	l.cycle = cycle
	l.ctrl.update(l, cycle)
}

// Controller collates the sources of the IRQ and NMI lines.
type Controller struct {
	sources []*Line

	// bitmask of asserted sources for each line
	irq uint32
	nmi uint32

	// cycle of the most recent change of the IRQ line
	irqCycle uint64

	// an NMI edge has been seen and not yet acknowledged
	nmiPending bool
	nmiCycle   uint64

	// called whenever the state of a line changes
	onChange func(kind Kind, asserted bool, cycle uint64)
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (ctrl *Controller) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "IRQ: %v NMI: %v", ctrl.irq != 0, ctrl.nmiPending)
	for _, l := range ctrl.sources {
		s.WriteString("\n  ")
		s.WriteString(l.String())
	}
	return s.String()
}

// NewSource adds a new source to the IRQ or NMI line. There is a limit of 32
// sources per controller.
func (ctrl *Controller) NewSource(name string, kind Kind) *Line {
	if len(ctrl.sources) >= 32 {
		panic("interrupt: too many sources")
	}
	l := &Line{
		ctrl: ctrl,
		name: name,
		kind: kind,
		bit:  1 << len(ctrl.sources),
	}
	ctrl.sources = append(ctrl.sources, l)
	return l
}

// SetOnChange sets the function to be called when the state of a line
// changes. A nil function removes the callback.
func (ctrl *Controller) SetOnChange(f func(kind Kind, asserted bool, cycle uint64)) {
	ctrl.onChange = f
}

func (ctrl *Controller) update(l *Line, cycle uint64) {
	switch l.kind {
	case IRQ:
		before := ctrl.irq != 0
		if l.asserted {
			ctrl.irq |= l.bit
		} else {
			ctrl.irq &^= l.bit
		}
		if after := ctrl.irq != 0; after != before {
			ctrl.irqCycle = cycle
			if ctrl.onChange != nil {
				ctrl.onChange(IRQ, after, cycle)
			}
		}
	case NMI:
		before := ctrl.nmi != 0
		if l.asserted {
			ctrl.nmi |= l.bit
		} else {
			ctrl.nmi &^= l.bit
		}
		after := ctrl.nmi != 0
		if after && !before {
			ctrl.nmiPending = true
			ctrl.nmiCycle = cycle
		}
		if after != before && ctrl.onChange != nil {
			ctrl.onChange(NMI, after, cycle)
		}
	}
}

// IRQ returns true if the IRQ line is asserted and the cycle at which the
// line last changed.
func (ctrl *Controller) IRQ() (bool, uint64) {
	return ctrl.irq != 0, ctrl.irqCycle
}

// NMI returns true if an NMI edge is pending and the cycle of the edge.
func (ctrl *Controller) NMI() (bool, uint64) {
	return ctrl.nmiPending, ctrl.nmiCycle
}

// NMILevel returns true if any source is asserting the NMI line.
func (ctrl *Controller) NMILevel() bool {
	return ctrl.nmi != 0
}

// AcknowledgeNMI clears the pending NMI edge. Another NMI will not be pending
// until every NMI source has released the line and one of them asserts it
// again.
func (ctrl *Controller) AcknowledgeNMI() {
	ctrl.nmiPending = false
}

// Reset releases every source and forgets any pending NMI.
func (ctrl *Controller) Reset() {
	for _, l := range ctrl.sources {
		l.asserted = false
		l.cycle = 0
	}
	ctrl.irq = 0
	ctrl.nmi = 0
	ctrl.irqCycle = 0
	ctrl.nmiPending = false
	ctrl.nmiCycle = 0
}
