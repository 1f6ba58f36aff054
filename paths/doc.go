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

// Package paths contains functions to prepare paths for gopher6526 resources.
//
// The ResourcePath() function modifies the supplied resource string such
// that it is prepended with the appropriate config directory. In development
// builds this is a ".gopher6526" directory in the current working directory.
// In builds with the release tag it is the user's config directory as
// defined by os.UserConfigDir().
//
// Directories are created as required.
package paths
