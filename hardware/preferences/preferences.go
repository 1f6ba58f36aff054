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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/paths"
	"github.com/jetsetilly/gopher6526/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the television specification of the machine. PAL or NTSC. the value
	// decides the clock frequency and therefore the number of cycles in a
	// tenth of a second for the TOD clock
	TVSpec prefs.String

	// unconnected port pins take random values when read rather than
	// floating high
	RandomPins prefs.Bool

	// check for bus accesses that happen on a cycle that has already had its
	// alarms dispatched. violations are logged
	AlarmCheck prefs.Bool

	// minor version of the snapshot record written by the CIA. older readers
	// only accept minor version 0
	SnapshotMinor prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.TVSpec.SetHookPre(func(v prefs.Value) error {
		if _, ok := clocks.Frequency(fmt.Sprintf("%v", v)); !ok {
			return fmt.Errorf("preferences: unsupported tv spec (%v)", v)
		}
		return nil
	})

	p.SnapshotMinor.SetHookPre(func(v prefs.Value) error {
		switch v := v.(type) {
		case int:
			if v < 0 || v > 1 {
				return fmt.Errorf("preferences: unsupported snapshot minor version (%d)", v)
			}
		}
		return nil
	})

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.tvspec", &p.TVSpec)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randpins", &p.RandomPins)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.alarmcheck", &p.AlarmCheck)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.snapshotminor", &p.SnapshotMinor)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.TVSpec.Set(clocks.SpecPAL)
	p.RandomPins.Set(false)
	p.AlarmCheck.Set(false)
	p.SnapshotMinor.Set(1)
}

// Spec returns the television specification in a normalised form.
func (p *Preferences) Spec() string {
	return strings.ToUpper(strings.TrimSpace(p.TVSpec.Get().(string)))
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
