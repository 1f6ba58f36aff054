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

// Package assert contains checks for conditions that should never happen.
// Violations are programming errors in the host that is driving an emulated
// chip, for example accessing a register on a cycle after an alarm for that
// cycle has already been dispatched.
//
// The checks are only compiled when the assertions build tag is present:
//
//	go test -tags=assertions ./...
//
// Without the tag, Check() is an empty function and callers that need to
// report the condition in production builds should log it instead.
package assert
