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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:16526"

const url = "/debug/statsview"

// number of points kept by each graph. enough for two minutes of a RUN at
// the default sampling interval.
const maxPoints = 60

// Launch the stats server in a new goroutine. An empty address means
// DefaultAddress. The location of the graphs is written to output.
func Launch(output io.Writer, address string) {
	if address == "" {
		address = DefaultAddress
	}

	go func() {
		viewer.SetConfiguration(viewer.WithAddr(address), viewer.WithMaxPoints(maxPoints))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server for the emulation available at %s%s\n", address, url)
}

// Available returns true if the stats server has been built into the
// program.
func Available() bool {
	return true
}
