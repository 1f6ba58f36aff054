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

// Package statsview runs a local HTTP server showing the runtime statistics
// of the emulation: heap use, GC pauses and goroutine counts. It is built
// only with the statsview build tag. Without the tag Launch() does nothing
// and Available() returns false.
//
// The graphs are drawn by "github.com/go-echarts/statsview". With the
// default address they are at:
//
//	localhost:16526/debug/statsview
//
// and the standard pprof endpoints are at:
//
//	localhost:16526/debug/pprof/
//
// The RUN mode launches the server with the -statsview flag. Watching the
// heap graph during a long run shows whether the alarm dispatcher or the
// port observers allocate per cycle.
package statsview
