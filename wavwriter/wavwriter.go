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

package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/hardware/machine"
	"github.com/jetsetilly/gopher6526/logger"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// the pins of port B that are recorded.
const (
	pb6 = 0x40
	pb7 = 0x80
)

// amplitude of a single pin in a 16-bit sample.
const amplitude = 0x2000

type change struct {
	cycle uint64
	level uint8
}

// WavWriter implements the machine.PortObserver interface.
type WavWriter struct {
	filename string
	chip     string

	// number of system clock cycles in a second
	clockFreq float64

	// the cycle of the first change. samples are generated from this point
	start   uint64
	started bool

	changes []change
}

// New is the preferred method of initialisation for the WavWriter type. The
// chip argument is the label of the CIA to record. The clock frequency is the
// number of system clock cycles in a second.
func New(filename string, chip string, clockFreq float64) (*WavWriter, error) {
	if clockFreq <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "bad clock frequency")
	}

	aw := &WavWriter{
		filename:  filename,
		chip:      chip,
		clockFreq: clockFreq,
		changes:   make([]change, 0),
	}

	return aw, nil
}

// PortChanged implements the machine.PortObserver interface.
func (aw *WavWriter) PortChanged(chip string, port machine.Port, cycle uint64, data uint8) {
	if chip != aw.chip || port != machine.PortB {
		return
	}

	level := data & (pb6 | pb7)

	if !aw.started {
		aw.start = cycle
		aw.started = true
	} else if aw.changes[len(aw.changes)-1].level == level {
		return
	}

	aw.changes = append(aw.changes, change{cycle: cycle, level: level})
}

// the value of a sample for the pin levels.
func sample(level uint8) int {
	v := -amplitude
	if level&pb6 == pb6 {
		v += amplitude
	}
	if level&pb7 == pb7 {
		v += amplitude
	}
	return v
}

// Samples returns the 16-bit mono samples for the changes recorded between
// the first change and the end cycle.
func (aw *WavWriter) Samples(end uint64) []int {
	if !aw.started || end <= aw.start {
		return []int{}
	}

	n := int(float64(end-aw.start) * SampleFreq / aw.clockFreq)
	data := make([]int, 0, n)

	idx := 0
	for i := range n {
		cycle := aw.start + uint64(float64(i)*aw.clockFreq/SampleFreq)
		for idx < len(aw.changes)-1 && aw.changes[idx+1].cycle <= cycle {
			idx++
		}
		data = append(data, sample(aw.changes[idx].level))
	}

	return data
}

// Write the samples up to the end cycle to the WAV file.
func (aw *WavWriter) Write(end uint64) (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.Samples(end),
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(buf.Data), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
