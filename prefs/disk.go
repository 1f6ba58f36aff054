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
	"bufio"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value on each line of the file.
const separator = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	BadPrefsFile = "prefs: %s is not a valid prefs file"
	BadKey       = "prefs: invalid key (%s)"
	DuplicateKey = "prefs: key already added (%s)"
	PrefsError   = "prefs: %v"
)

// Disk represents preference values as stored on disk. More than one Disk
// instance can use the same file. Keys added to one instance do not clobber
// the keys added to another instance when the file is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// sorted list of keys in the entries map.
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// Add a preference value to the disk instance. The key must not contain the
// separator string or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, strings.TrimSpace(separator)) || strings.ContainsAny(key, "\n\r") {
		return curated.Errorf(BadKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsError, err)
		}
	}
	return nil
}

// read the prefs file into a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(BadPrefsFile, dsk.path)
	}

	m := make(map[string]string)
	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		if isDefunct(k) {
			continue
		}
		m[k] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	return m, nil
}

// Save current preference values to disk. Values in the file that belong to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		m = make(map[string]string)
	}

	for k, p := range dsk.entries {
		m[k] = p.String()
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(m[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(PrefsError, err)
	}

	return nil
}

// Load preference values from disk. If saveIfMissing is true and the file
// does not exist then the file is created with the current values. The
// NoPrefsFile error is still returned in that case and can usually be
// ignored by the caller.
//
// Values on the command line stack (see PushCommandLineStack()) take
// priority over the values on disk.
func (dsk *Disk) Load(saveIfMissing bool) error {
	m, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveIfMissing {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
		dsk.commandLine()
		return err
	}

	for k, v := range m {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, err)
			}
		}
	}

	return dsk.commandLine()
}

// apply values from the command line stack.
func (dsk *Disk) commandLine() error {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, err)
			}
		}
	}
	return nil
}
