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

// Package snapshot is a container for the saved state of the emulated chips.
// A snapshot is a list of named modules. Each module has a major and minor
// version number and holds a sequence of typed fields. The owner of a module
// is responsible for writing and reading the fields in the same order.
//
// Fields are stored little-endian. There is no type information in the
// stream so a module can only be interpreted by code that knows its version.
//
// A snapshot is created with NewWriter(), filled with modules and saved with
// Save(). It is loaded with Load(), which returns a Reader from which
// modules can be retrieved by name.
package snapshot
