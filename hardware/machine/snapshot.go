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

package machine

import (
	"io"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/logger"
	"github.com/jetsetilly/gopher6526/snapshot"
)

// name and version of the machine module in a snapshot.
const (
	snapshotModule = "MACHINE"
	snapshotMajor  = 1
	snapshotMinor  = 0
)

// Sentinal error patterns.
const (
	SnapshotError = "machine: snapshot: %v"
)

// Snapshot the state of the machine. The snapshot contains a module for the
// machine and one for each CIA.
func (m *Machine) Snapshot() (*snapshot.Writer, error) {
	w := snapshot.NewWriter()

	mod, err := w.NewModule(snapshotModule, snapshotMajor, snapshotMinor)
	if err != nil {
		return nil, curated.Errorf(SnapshotError, err)
	}
	mod.PutQword(m.Clock.cycle)
	for _, p := range []*Ports{m.Ports1, m.Ports2} {
		mod.PutByte(p.ConnectedA)
		mod.PutByte(p.ConnectedB)
		mod.PutByte(p.InputA)
		mod.PutByte(p.InputB)
	}

	if err := m.CIA1.WriteSnapshot(w); err != nil {
		return nil, curated.Errorf(SnapshotError, err)
	}
	if err := m.CIA2.WriteSnapshot(w); err != nil {
		return nil, curated.Errorf(SnapshotError, err)
	}

	return w, nil
}

// SaveSnapshot writes a snapshot of the machine.
func (m *Machine) SaveSnapshot(out io.Writer) error {
	w, err := m.Snapshot()
	if err != nil {
		return err
	}
	if err := w.Save(out); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	return nil
}

// SaveSnapshotFile writes a snapshot of the machine to the named file.
func (m *Machine) SaveSnapshotFile(filename string) error {
	w, err := m.Snapshot()
	if err != nil {
		return err
	}
	if err := w.SaveFile(filename); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	logger.Logf(m.Instance, "snapshot", "saved to %s at cycle %d", filename, m.Clock.cycle)
	return nil
}

// Plumb the state in the snapshot into the machine. The clock is set to the
// cycle of the snapshot. The state of the machine is unchanged if an error is
// returned.
func (m *Machine) Plumb(rd *snapshot.Reader) error {
	mod, err := rd.Module(snapshotModule)
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	if major, _ := mod.Version(); major != snapshotMajor {
		return curated.Errorf(SnapshotError, curated.Errorf("unsupported machine version (%d)", major))
	}

	cycle, err := mod.GetQword()
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	var ports [8]uint8
	for i := range ports {
		ports[i], err = mod.GetByte()
		if err != nil {
			return curated.Errorf(SnapshotError, err)
		}
	}

	// keep the current state so that a failed load can be undone
	backup, err := m.Snapshot()
	if err != nil {
		return err
	}
	previous := m.Clock.cycle

	m.Clock.cycle = cycle
	if err := m.CIA1.ReadSnapshot(rd); err != nil {
		m.Clock.cycle = previous
		return curated.Errorf(SnapshotError, err)
	}
	if err := m.CIA2.ReadSnapshot(rd); err != nil {
		m.Clock.cycle = previous
		if rerr := m.CIA1.ReadSnapshot(backup.Reader()); rerr != nil {
			logger.Log(m.Instance, "snapshot", rerr)
		}
		return curated.Errorf(SnapshotError, err)
	}

	for i, p := range []*Ports{m.Ports1, m.Ports2} {
		p.ConnectedA = ports[i*4]
		p.ConnectedB = ports[i*4+1]
		p.InputA = ports[i*4+2]
		p.InputB = ports[i*4+3]
	}

	return nil
}

// LoadSnapshot reads a snapshot and plumbs it into the machine.
func (m *Machine) LoadSnapshot(in io.Reader) error {
	rd, err := snapshot.Load(in)
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	return m.Plumb(rd)
}

// LoadSnapshotFile reads a snapshot from the named file and plumbs it into
// the machine.
func (m *Machine) LoadSnapshotFile(filename string) error {
	rd, err := snapshot.LoadFile(filename)
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	if err := m.Plumb(rd); err != nil {
		return err
	}
	logger.Logf(m.Instance, "snapshot", "loaded %s at cycle %d", filename, m.Clock.cycle)
	return nil
}
