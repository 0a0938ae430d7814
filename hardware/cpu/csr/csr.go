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

package csr

import (
	"fmt"
	"slices"
	"strings"
)

// Indexes of the architectural CSRs that are present from construction.
const (
	MStatus   uint16 = 0x300
	MIE       uint16 = 0x304
	MTVec     uint16 = 0x305
	MScratch  uint16 = 0x340
	MEPC      uint16 = 0x341
	MCause    uint16 = 0x342
	MTVal     uint16 = 0x343
	MIP       uint16 = 0x344
	Cycle     uint16 = 0xc00
	Time      uint16 = 0xc01
	InstRet   uint16 = 0xc02
	MVendorID uint16 = 0xf11
	MArchID   uint16 = 0xf12
	MImpID    uint16 = 0xf13
	MHartID   uint16 = 0xf14
)

var names = map[uint16]string{
	MStatus:   "mstatus",
	MIE:       "mie",
	MTVec:     "mtvec",
	MScratch:  "mscratch",
	MEPC:      "mepc",
	MCause:    "mcause",
	MTVal:     "mtval",
	MIP:       "mip",
	Cycle:     "cycle",
	Time:      "time",
	InstRet:   "instret",
	MVendorID: "mvendorid",
	MArchID:   "marchid",
	MImpID:    "mimpid",
	MHartID:   "mhartid",
}

// Label returns the name of the CSR or the index in hex if the CSR has no
// name.
func Label(idx uint16) string {
	if n, ok := names[idx]; ok {
		return n
	}
	return fmt.Sprintf("0x%03x", idx&0xfff)
}

// File is the collection of CSRs for a single CPU.
type File struct {
	values map[uint16]uint32
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	f := &File{
		values: make(map[uint16]uint32),
	}
	f.Reset()
	return f
}

// Reset all CSRs to zero. Unknown CSRs created by a write are removed.
func (f *File) Reset() {
	clear(f.values)
	for idx := range names {
		f.values[idx] = 0
	}
}

// Read the value of the CSR. Unknown CSRs read as zero.
func (f *File) Read(idx uint16) uint32 {
	return f.values[idx&0xfff]
}

// Write value to the CSR. Unknown CSRs are created.
func (f *File) Write(idx uint16, value uint32) {
	f.values[idx&0xfff] = value
}

// Present returns true if the CSR has been seeded or written to.
func (f *File) Present(idx uint16) bool {
	_, ok := f.values[idx&0xfff]
	return ok
}

// Snapshot returns a copy of every present CSR keyed by its label.
func (f *File) Snapshot() map[string]uint32 {
	m := make(map[string]uint32, len(f.values))
	for idx, v := range f.values {
		m[Label(idx)] = v
	}
	return m
}

// String lists every present CSR in index order.
func (f *File) String() string {
	idxs := make([]uint16, 0, len(f.values))
	for idx := range f.values {
		idxs = append(idxs, idx)
	}
	slices.Sort(idxs)

	s := strings.Builder{}
	for _, idx := range idxs {
		fmt.Fprintf(&s, "%-9s %08x\n", Label(idx), f.values[idx])
	}
	return s.String()
}
