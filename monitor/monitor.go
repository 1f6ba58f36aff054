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

package monitor

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/machine"
	"github.com/jetsetilly/gopher6526/logger"
)

// Sentinal error patterns.
const (
	NotATerminal = "monitor: %s is not a terminal"
	MonitorError = "monitor: %v"
)

// DefaultRunLength is the number of cycles run by the 'r' command.
const DefaultRunLength = 10000

// the number of log entries printed by the 'l' command.
const tailLength = 10

// Monitor accepts single key commands and applies them to the machine.
type Monitor struct {
	m   *machine.Machine
	out io.Writer

	// number of cycles run by the 'r' command
	RunLength uint64

	trace bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(m *machine.Machine, out io.Writer) *Monitor {
	return &Monitor{
		m:         m,
		out:       out,
		RunLength: DefaultRunLength,
	}
}

func (mon *Monitor) printf(pattern string, args ...any) {
	fmt.Fprintf(mon.out, pattern, args...)
}

func (mon *Monitor) help() {
	mon.printf("s step  n next alarm  r run %d cycles  p print  i interrupts  t trace  l log  q quit\n", mon.RunLength)
}

// Command applies the command for the key to the machine. Returns false if
// the monitor should end.
func (mon *Monitor) Command(key byte) (bool, error) {
	switch key {
	case 's':
		mon.m.Step()
		mon.printf("cycle %d\n", mon.m.Cycle())

	case 'n':
		next, ok := mon.m.Alarms.Next()
		if !ok {
			mon.printf("no alarm pending\n")
			break
		}
		mon.m.AdvanceTo(next + 1)
		mon.printf("cycle %d\n", mon.m.Cycle())

	case 'r':
		if err := mon.m.RunForCycles(mon.RunLength, nil); err != nil {
			return false, curated.Errorf(MonitorError, err)
		}
		mon.printf("cycle %d\n", mon.m.Cycle())

	case 'p':
		mon.printf("%s\n", mon.m)

	case 'i':
		mon.printf("%s\n", mon.m.Interrupts)

	case 't':
		mon.setTrace(!mon.trace)
		mon.printf("trace %v\n", mon.trace)

	case 'l':
		logger.Tail(mon.out, tailLength)

	case 'h', '?':
		mon.help()

	case 'q':
		return false, nil

	case '\n', '\r', ' ':

	default:
		mon.printf("unknown command (%c)\n", key)
	}

	return true, nil
}

func (mon *Monitor) setTrace(trace bool) {
	mon.trace = trace
	mon.m.CIA1.SetTrace(trace)
	mon.m.CIA2.SetTrace(trace)
	if trace {
		logger.SetEcho(mon.out)
	} else {
		logger.SetEcho(nil)
	}
}

// Run the monitor until the 'q' key is pressed. The input must be a terminal.
func (mon *Monitor) Run(input *os.File) (rerr error) {
	t, err := newTerminal(input)
	if err != nil {
		return err
	}

	if err := t.cbreakMode(); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	defer func() {
		mon.setTrace(false)
		if err := t.canonicalMode(); err != nil && rerr == nil {
			rerr = curated.Errorf(MonitorError, err)
		}
	}()

	if err := t.flush(); err != nil {
		return curated.Errorf(MonitorError, err)
	}

	mon.help()

	for {
		key, err := t.readKey()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf(MonitorError, err)
		}

		ok, err := mon.Command(key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
