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

// Package version reports the version of the program. The version number is
// set by the linker when the program is built for release:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher6526/version.number=v0.1.0"
//
// Otherwise the version is taken from the VCS information in the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher6526"

// set by the linker for release builds.
var number string

// the version and revision strings decided by init().
var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if the program was built from a VCS
// checkout without a version number and "local" if there is no VCS
// information at all. A revision with uncommitted changes is suffixed with
// "+dirty".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line describing the application and version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case revision == "":
		revision = "no revision information"
	case modified:
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
