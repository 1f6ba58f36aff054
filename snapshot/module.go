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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher6526/curated"
)

// Module is a named and versioned sequence of fields.
type Module struct {
	name  string
	major uint8
	minor uint8

	data []byte

	// read position
	pos int
}

func (m *Module) String() string {
	return fmt.Sprintf("%s v%d.%d (%d bytes)", m.name, m.major, m.minor, len(m.data))
}

// Name returns the name of the module.
func (m *Module) Name() string {
	return m.name
}

// Version returns the major and minor version of the module.
func (m *Module) Version() (uint8, uint8) {
	return m.major, m.minor
}

// Len returns the number of bytes of field data in the module.
func (m *Module) Len() int {
	return len(m.data)
}

// Rewind sets the read position to the start of the module.
func (m *Module) Rewind() {
	m.pos = 0
}

// PutByte appends a byte field.
func (m *Module) PutByte(v uint8) {
	m.data = append(m.data, v)
}

// PutWord appends a 16 bit field.
func (m *Module) PutWord(v uint16) {
	m.data = binary.LittleEndian.AppendUint16(m.data, v)
}

// PutDword appends a 32 bit field.
func (m *Module) PutDword(v uint32) {
	m.data = binary.LittleEndian.AppendUint32(m.data, v)
}

// PutQword appends a 64 bit field.
func (m *Module) PutQword(v uint64) {
	m.data = binary.LittleEndian.AppendUint64(m.data, v)
}

// PutBytes appends the bytes in v.
func (m *Module) PutBytes(v []byte) {
	m.data = append(m.data, v...)
}

// take the next n bytes of the module.
func (m *Module) take(n int) ([]byte, error) {
	if m.pos+n > len(m.data) {
		return nil, curated.Errorf(ReadOutOfBounds, m.name)
	}
	b := m.data[m.pos : m.pos+n]
	m.pos += n
	return b, nil
}

// GetByte reads the next field as a byte.
func (m *Module) GetByte() (uint8, error) {
	b, err := m.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// GetWord reads the next field as a 16 bit value.
func (m *Module) GetWord() (uint16, error) {
	b, err := m.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// GetDword reads the next field as a 32 bit value.
func (m *Module) GetDword() (uint32, error) {
	b, err := m.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// GetQword reads the next field as a 64 bit value.
func (m *Module) GetQword() (uint64, error) {
	b, err := m.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// GetBytes reads the next n bytes. The returned slice is a copy.
func (m *Module) GetBytes(n int) ([]byte, error) {
	b, err := m.take(n)
	if err != nil {
		return nil, err
	}
	c := make([]byte, n)
	copy(c, b)
	return c, nil
}
