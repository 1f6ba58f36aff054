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

package snapshot_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/snapshot"
	"github.com/jetsetilly/gopher6526/test"
)

func TestFields(t *testing.T) {
	w := snapshot.NewWriter()
	m, err := w.NewModule("CIA1", 1, 1)
	test.DemandSuccess(t, err)

	m.PutByte(0xab)
	m.PutWord(0x1234)
	m.PutDword(0xdeadbeef)
	m.PutQword(0x0102030405060708)
	m.PutBytes([]byte{1, 2, 3})
	test.ExpectEquality(t, m.Len(), 1+2+4+8+3)

	_, err = w.NewModule("CIA1", 1, 0)
	test.ExpectSuccess(t, curated.Is(err, snapshot.DuplicateModule))

	n, err := w.NewModule("CIA2", 2, 0)
	test.DemandSuccess(t, err)
	n.PutByte(0x01)

	var buf bytes.Buffer
	test.DemandSuccess(t, w.Save(&buf))

	r, err := snapshot.Load(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(r.Modules()), 2)

	m, err = r.Module("CIA1")
	test.DemandSuccess(t, err)
	major, minor := m.Version()
	test.ExpectEquality(t, major, uint8(1))
	test.ExpectEquality(t, minor, uint8(1))

	b, err := m.GetByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0xab))
	wd, err := m.GetWord()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, wd, uint16(0x1234))
	dw, err := m.GetDword()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dw, uint32(0xdeadbeef))
	qw, err := m.GetQword()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, qw, uint64(0x0102030405060708))
	bs, err := m.GetBytes(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(bs), string([]byte{1, 2, 3}))

	// nothing left to read
	_, err = m.GetByte()
	test.ExpectSuccess(t, curated.Is(err, snapshot.ReadOutOfBounds))

	_, err = r.Module("VIA1")
	test.ExpectSuccess(t, curated.Is(err, snapshot.ModuleNotFound))

	// retrieving a module again reads from the start
	m, err = r.Module("CIA1")
	test.DemandSuccess(t, err)
	b, _ = m.GetByte()
	test.ExpectEquality(t, b, uint8(0xab))
}

func TestBadMagic(t *testing.T) {
	_, err := snapshot.Load(bytes.NewBufferString("NOT A SNAPSHOT FILE AT ALL"))
	test.ExpectSuccess(t, curated.Is(err, snapshot.BadMagic))

	_, err = snapshot.Load(bytes.NewBufferString(""))
	test.ExpectSuccess(t, curated.Is(err, snapshot.BadMagic))
}

func TestTruncated(t *testing.T) {
	w := snapshot.NewWriter()
	m, _ := w.NewModule("CIA1", 1, 0)
	m.PutDword(0x11223344)

	var buf bytes.Buffer
	test.DemandSuccess(t, w.Save(&buf))
	data := buf.Bytes()

	_, err := snapshot.Load(bytes.NewBuffer(data[:len(data)-1]))
	test.ExpectSuccess(t, curated.Is(err, snapshot.ReadOutOfBounds))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.snapshot")

	w := snapshot.NewWriter()
	m, _ := w.NewModule("CIA2", 1, 0)
	m.PutWord(0xffff)
	test.DemandSuccess(t, w.SaveFile(fn))

	r, err := snapshot.LoadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "CIA2 v1.0 (2 bytes)")

	// a reader can also be taken directly from the writer
	r = w.Reader()
	m, err = r.Module("CIA2")
	test.DemandSuccess(t, err)
	v, _ := m.GetWord()
	test.ExpectEquality(t, v, uint16(0xffff))
}
