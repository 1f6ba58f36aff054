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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher6526/hardware/machine"
	"github.com/jetsetilly/gopher6526/test"
	"github.com/jetsetilly/gopher6526/wavwriter"
)

// a clock frequency of one cycle per sample
const oneToOne = float64(wavwriter.SampleFreq)

func record(t *testing.T, filename string) *wavwriter.WavWriter {
	t.Helper()

	aw, err := wavwriter.New(filename, "CIA1", oneToOne)
	test.DemandSuccess(t, err)

	aw.PortChanged("CIA1", machine.PortB, 10, 0xff)
	aw.PortChanged("CIA1", machine.PortA, 12, 0x00)
	aw.PortChanged("CIA2", machine.PortB, 13, 0x00)
	aw.PortChanged("CIA1", machine.PortB, 15, 0xbf)
	aw.PortChanged("CIA1", machine.PortB, 17, 0x80)
	aw.PortChanged("CIA1", machine.PortB, 20, 0x3f)

	return aw
}

func TestSamples(t *testing.T) {
	aw := record(t, "")

	s := aw.Samples(25)
	test.DemandEquality(t, len(s), 15)
	for i, v := range s {
		switch {
		case i < 5:
			test.ExpectEquality(t, v, 0x2000, i)
		case i < 10:
			test.ExpectEquality(t, v, 0, i)
		default:
			test.ExpectEquality(t, v, -0x2000, i)
		}
	}

	test.ExpectEquality(t, len(aw.Samples(10)), 0)

	_, err := wavwriter.New("", "CIA1", 0)
	test.ExpectFailure(t, err)
}

func TestWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.wav")
	aw := record(t, filename)
	test.DemandSuccess(t, aw.Write(25))

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.SampleRate, uint32(wavwriter.SampleFreq))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.DemandEquality(t, len(buf.Data), 15)
	test.ExpectEquality(t, buf.Data[0], 0x2000)
	test.ExpectEquality(t, buf.Data[14], -0x2000)
}
