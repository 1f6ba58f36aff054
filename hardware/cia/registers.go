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

package cia

// Register addresses. Only the lower four bits of an address are decoded.
const (
	PRA uint16 = iota
	PRB
	DDRA
	DDRB
	TAL
	TAH
	TBL
	TBH
	TODTEN
	TODSEC
	TODMIN
	TODHR
	SDR
	ICR
	CRA
	CRB
)

// NumRegisters is the number of addressable registers.
const NumRegisters = 16

// RegisterNames lists the canonical name of every register in address order.
var RegisterNames = [NumRegisters]string{
	"PRA", "PRB", "DDRA", "DDRB",
	"TAL", "TAH", "TBL", "TBH",
	"TODTEN", "TODSEC", "TODMIN", "TODHR",
	"SDR", "ICR", "CRA", "CRB",
}

// Interrupt sources. The bits are the same in the flag and the enable
// registers.
const (
	IntTA  uint8 = 0x01
	IntTB  uint8 = 0x02
	IntTOD uint8 = 0x04
	IntSDR uint8 = 0x08
	IntFLG uint8 = 0x10

	// set in the value read from ICR if any enabled flag is set
	IntIR uint8 = 0x80
)

// bits in the control registers.
const (
	crStart    = 0x01
	crPBOn     = 0x02
	crToggle   = 0x04
	crOneShot  = 0x08
	crLoad     = 0x10
	crSPOut    = 0x40 // CRA only
	crTODAlarm = 0x80 // CRB only
)

// bus timing. stores happen one cycle after the clock
const (
	StoreOffset = 1
	ReadOffset  = 0
)
