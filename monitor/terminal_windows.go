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
	"os"

	"github.com/jetsetilly/gopher6526/curated"
)

type terminal struct{}

func newTerminal(input *os.File) (*terminal, error) {
	return nil, curated.Errorf(MonitorError, "not supported on windows")
}

func (t *terminal) cbreakMode() error     { return nil }
func (t *terminal) canonicalMode() error  { return nil }
func (t *terminal) flush() error          { return nil }
func (t *terminal) readKey() (byte, error) { return 'q', nil }
