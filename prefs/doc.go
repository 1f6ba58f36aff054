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

// Package prefs facilitates the storage of preferential values on disk.
// Values are represented by the Bool, Int, Float, String and Generic types,
// each of which can be registered with a Disk instance:
//
//	dsk, _ := prefs.NewDisk(path)
//	var spec prefs.String
//	dsk.Add("hardware.tvspec", &spec)
//	dsk.Load(true)
//
// The file is plain text, one "key :: value" pair per line, preceded by the
// WarningBoilerPlate line. Several Disk instances can share a file.
//
// Values can also be specified on the command line. A mode that accepts a
// preferences string pushes it with PushCommandLineStack() before any Disk
// instances are loaded, and pops it when it has finished. Command line
// values take priority over values on disk and are never saved unless the
// program explicitly calls Save().
package prefs
