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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// preferences specified on the command line. each group is pushed by the
// mode that parsed it and popped when the mode has finished.
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// PushCommandLineStack parses a preferences string and adds it as a new
// group. The format of the string is:
//
//	key::value; key::value
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	grp := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			grp[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLine.stack = append(commandLine.stack, grp)
}

// PopCommandLineStack forgets the most recent group. Returns the entries
// that were never consumed by GetCommandLinePref(), sorted by key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	grp := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, grp[k]))
	}
	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for key from the most recent group.
// The entry is consumed.
func GetCommandLinePref(key string) (bool, string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, ""
	}

	grp := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}
	return false, ""
}
