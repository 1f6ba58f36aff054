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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the machine type, but is not actually the machine
// itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel.
package instance

import (
	"github.com/jetsetilly/gopher6526/hardware/preferences"
	"github.com/jetsetilly/gopher6526/random"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main       Label = ""
	Monitor    Label = "monitor"
	Comparison Label = "comparison"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the machine type, but is not actually the
// machine itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the prefrences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The two arguments must be supplied. In the case of the prefs field it can by
// nil and a new prefs instance will be created. Providing a non-nil value
// allows the preferences of more than one machine instance to be synchronised.
func NewInstance(clk random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clk),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the machine instance is in an known default state.
// Useful for testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Instances other
// than the main instance do not log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main
}
