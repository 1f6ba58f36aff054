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

//go:build !windows

package monitor

import (
	"os"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// terminal is a wrapper for "github.com/pkg/term/termios". it keeps the
// attributes for canonical and cbreak modes.
type terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func newTerminal(input *os.File) (*terminal, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}

	t := &terminal{input: input}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		return nil, curated.Errorf(MonitorError, err)
	}
	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	return t, nil
}

// cbreakMode puts the terminal into cbreak mode.
func (t *terminal) cbreakMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.cbreakAttr)
}

// canonicalMode puts the terminal back into normal, everyday canonical mode.
func (t *terminal) canonicalMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canAttr)
}

// flush makes sure the input buffer is empty.
func (t *terminal) flush() error {
	return termios.Tcflush(t.input.Fd(), termios.TCIFLUSH)
}

// readKey waits for a single key press.
func (t *terminal) readKey() (byte, error) {
	var b [1]byte
	if _, err := t.input.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
