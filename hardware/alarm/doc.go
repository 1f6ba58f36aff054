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

// Package alarm implements the event scheduling primitive used by the
// emulated chips. An alarm is a deferred function call bound to a cycle.
// Chips create their alarms once, when they are created, and arm them with
// Set() whenever the cycle of their next interesting event changes.
//
// The host that owns the clock calls Dispatch() after it has applied all bus
// accesses for a cycle. Alarms are called in non-decreasing cycle order and
// each armed alarm is called exactly once. An alarm that is re-armed from
// inside its own callback for a cycle that has already been reached will be
// called again during the same Dispatch().
package alarm
