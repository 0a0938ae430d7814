// This file is part of riscv32.
//
// riscv32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// riscv32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with riscv32.  If not, see <https://www.gnu.org/licenses/>.

// Package elftest creates minimal ELF files for testing. The files contain an
// ELF header and program headers but no section headers.
package elftest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Segment to include in the ELF file.
type Segment struct {
	Addr uint32
	Data []byte

	// the size in memory. if this is less than the length of Data then the
	// length of Data is used
	Memsz uint32

	Executable bool
}

// Header fields that can be changed to create invalid files.
type Header struct {
	Class   uint8
	Data    uint8
	Machine uint16
}

// RISCV is the header for a valid 32-bit little-endian RISC-V file.
var RISCV = Header{Class: 1, Data: 1, Machine: 243}

const (
	ehsize    = 52
	phentsize = 32
)

// Words converts instruction words to little-endian bytes.
func Words[T ~uint32](words ...T) []byte {
	b := make([]byte, 0, len(words)*4)
	for _, w := range words {
		b = binary.LittleEndian.AppendUint32(b, uint32(w))
	}
	return b
}

// Build an executable ELF file with the specified header.
func Build(hdr Header, entry uint32, segs ...Segment) []byte {
	le := binary.LittleEndian

	b := make([]byte, ehsize)
	copy(b, []byte{0x7f, 'E', 'L', 'F', hdr.Class, hdr.Data, 1})
	le.PutUint16(b[16:], 2) // ET_EXEC
	le.PutUint16(b[18:], hdr.Machine)
	le.PutUint32(b[20:], 1) // EV_CURRENT
	le.PutUint32(b[24:], entry)
	le.PutUint32(b[28:], ehsize) // program header offset
	le.PutUint16(b[40:], ehsize)
	le.PutUint16(b[42:], phentsize)
	le.PutUint16(b[44:], uint16(len(segs)))

	// segment data follows the program headers
	offset := uint32(ehsize + phentsize*len(segs))

	for _, s := range segs {
		memsz := max(s.Memsz, uint32(len(s.Data)))

		flags := uint32(0x4) // PF_R
		if s.Executable {
			flags |= 0x1 // PF_X
		} else {
			flags |= 0x2 // PF_W
		}

		ph := make([]byte, phentsize)
		le.PutUint32(ph[0:], 1) // PT_LOAD
		le.PutUint32(ph[4:], offset)
		le.PutUint32(ph[8:], s.Addr)
		le.PutUint32(ph[12:], s.Addr)
		le.PutUint32(ph[16:], uint32(len(s.Data)))
		le.PutUint32(ph[20:], memsz)
		le.PutUint32(ph[24:], flags)
		le.PutUint32(ph[28:], 4)
		b = append(b, ph...)

		offset += uint32(len(s.Data))
	}

	for _, s := range segs {
		b = append(b, s.Data...)
	}

	return b
}

// WriteFile builds a valid RISC-V ELF file and writes it to a temporary
// directory. Returns the path of the file.
func WriteFile(t *testing.T, name string, entry uint32, segs ...Segment) string {
	t.Helper()
	return WriteData(t, t.TempDir(), name, Build(RISCV, entry, segs...))
}

// WriteData writes data to the named file in the directory. Returns the path
// of the file.
func WriteData(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("elftest: %v", err)
	}
	return path
}
