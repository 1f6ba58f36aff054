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

package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher6526/curated"
)

// Sentinal error patterns.
const (
	BadMagic        = "snapshot: bad magic (%s)"
	ReadOutOfBounds = "snapshot: read out of bounds in module %s"
	ModuleNotFound  = "snapshot: module not found (%s)"
	DuplicateModule = "snapshot: module already exists (%s)"
	SnapshotError   = "snapshot: %v"
)

// Magic is the string at the start of every snapshot file.
const Magic = "GOPHER6526 SNAPSHOT"

// container version. this is different to the version of each module.
const (
	versionMajor = 1
	versionMinor = 0
)

// Writer collects modules for saving.
type Writer struct {
	modules []*Module
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter() *Writer {
	return &Writer{}
}

// NewModule adds a new empty module to the snapshot. Names must be unique
// within a snapshot.
func (w *Writer) NewModule(name string, major uint8, minor uint8) (*Module, error) {
	for _, m := range w.modules {
		if m.name == name {
			return nil, curated.Errorf(DuplicateModule, name)
		}
	}
	if len(name) == 0 || len(name) > 255 {
		return nil, curated.Errorf(SnapshotError, fmt.Sprintf("invalid module name (%s)", name))
	}
	m := &Module{
		name:  name,
		major: major,
		minor: minor,
	}
	w.modules = append(w.modules, m)
	return m, nil
}

// Save the snapshot to an io.Writer.
func (w *Writer) Save(out io.Writer) error {
	b := bufio.NewWriter(out)

	b.WriteString(Magic)
	b.WriteByte(versionMajor)
	b.WriteByte(versionMinor)

	for _, m := range w.modules {
		b.WriteByte(uint8(len(m.name)))
		b.WriteString(m.name)
		b.WriteByte(m.major)
		b.WriteByte(m.minor)
		b.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(m.data))))
		b.Write(m.data)
	}

	if err := b.Flush(); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	return nil
}

// SaveFile saves the snapshot to the named file.
func (w *Writer) SaveFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	if err := w.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	return nil
}

// Reader gives access to the modules of a loaded snapshot.
type Reader struct {
	modules []*Module
}

func (r *Reader) String() string {
	s := strings.Builder{}
	for i, m := range r.modules {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(m.String())
	}
	return s.String()
}

// Reader returns a Reader for the modules in the writer. Useful for
// restoring state without going through a file.
func (w *Writer) Reader() *Reader {
	r := &Reader{}
	for _, m := range w.modules {
		c := *m
		c.data = append([]byte(nil), m.data...)
		c.pos = 0
		r.modules = append(r.modules, &c)
	}
	return r
}

// Load a snapshot from an io.Reader.
func Load(in io.Reader) (*Reader, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, curated.Errorf(SnapshotError, err)
	}

	if !strings.HasPrefix(string(data), Magic) {
		n := min(len(data), len(Magic))
		return nil, curated.Errorf(BadMagic, strings.TrimSpace(string(data[:n])))
	}

	// the header is parsed as though it were a module
	hdr := &Module{name: "header", data: data[len(Magic):]}

	major, err := hdr.GetByte()
	if err != nil {
		return nil, err
	}
	if _, err := hdr.GetByte(); err != nil {
		return nil, err
	}
	if major != versionMajor {
		return nil, curated.Errorf(SnapshotError, fmt.Sprintf("unsupported container version (%d)", major))
	}

	r := &Reader{}

	for hdr.pos < len(hdr.data) {
		l, err := hdr.GetByte()
		if err != nil {
			return nil, err
		}
		name, err := hdr.GetBytes(int(l))
		if err != nil {
			return nil, err
		}
		m := &Module{name: string(name)}
		if m.major, err = hdr.GetByte(); err != nil {
			return nil, err
		}
		if m.minor, err = hdr.GetByte(); err != nil {
			return nil, err
		}
		size, err := hdr.GetDword()
		if err != nil {
			return nil, err
		}
		if m.data, err = hdr.GetBytes(int(size)); err != nil {
			return nil, err
		}
		r.modules = append(r.modules, m)
	}

	return r, nil
}

// LoadFile loads a snapshot from the named file.
func LoadFile(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SnapshotError, err)
	}
	defer f.Close()
	return Load(f)
}

// Module returns the named module. The read position of the module is reset
// to the start of the module.
func (r *Reader) Module(name string) (*Module, error) {
	for _, m := range r.modules {
		if m.name == name {
			m.Rewind()
			return m, nil
		}
	}
	return nil, curated.Errorf(ModuleNotFound, name)
}

// Modules returns the names of the modules in the snapshot, in the order in
// which they were saved.
func (r *Reader) Modules() []string {
	n := make([]string, len(r.modules))
	for i, m := range r.modules {
		n[i] = m.name
	}
	return n
}
