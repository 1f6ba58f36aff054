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

// Package tod implements the time-of-day clock of the CIA. The clock counts
// tenths of seconds, seconds, minutes and hours in BCD, with a PM flag in bit
// 7 of the hours register.
//
// The clock does not keep time itself. The CIA calls Tick() every
// TicksPerTenth cycles from an alarm.
package tod
