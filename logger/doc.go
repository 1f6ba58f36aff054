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

// Package logger is the central log for the application. Entries have a tag
// and a detail. The tag is usually the name of the package or chip instance
// that made the entry:
//
//	logger.Logf(logger.Allow, "cia1", "ICR acknowledge of %02x but flag not pending", mask)
//
// Every call requires a Permission. The emulated chips use the Permission
// implementation of the machine they belong to, which means that a machine
// that is being used for a snapshot comparison, for example, can run without
// filling the log with duplicate entries.
//
// The log is bounded. Oldest entries are forgotten once the limit is
// reached. Consecutive identical entries are collapsed into one entry with a
// repeat count.
package logger
