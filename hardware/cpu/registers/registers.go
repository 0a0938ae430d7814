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

package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 32

// Registers with a special meaning in the calling convention.
const (
	Zero = 0
	RA   = 1
	SP   = 2
	GP   = 3
	A0   = 10
	A7   = 17
)

// abiNames are the register names used by assemblers
var abiNames = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// Valid returns true if the index refers to a register.
func Valid(r int) bool {
	return r >= 0 && r < NumRegisters
}

// Label returns the ABI name of the register. An invalid index returns a
// placeholder label.
func Label(r int) string {
	if !Valid(r) {
		return fmt.Sprintf("x?%d", r)
	}
	return abiNames[r]
}

// File is the general purpose register file. The zero value is ready to use
// with all registers set to zero.
type File struct {
	r [NumRegisters]uint32
}

// Reset all registers to zero.
func (f *File) Reset() {
	clear(f.r[:])
}

// Read returns the value of register r. Register zero and invalid indexes
// always read zero.
func (f *File) Read(r int) uint32 {
	if r <= Zero || r >= NumRegisters {
		return 0
	}
	return f.r[r]
}

// Write value to register r. Writes to register zero or an invalid index are
// ignored.
func (f *File) Write(r int, value uint32) {
	if r <= Zero || r >= NumRegisters {
		return
	}
	f.r[r] = value
}

// String returns all registers in four columns. The first column is x0 to
// x7, the second column x8 to x15, and so on.
func (f *File) String() string {
	const rows = NumRegisters / 4

	s := strings.Builder{}
	for row := range rows {
		for col := range 4 {
			i := row + col*rows
			if col > 0 {
				s.WriteString("  ")
			}
			fmt.Fprintf(&s, "x%-2d %-4s %08x", i, abiNames[i], f.r[i])
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Snapshot returns a copy of every register.
func (f *File) Snapshot() [NumRegisters]uint32 {
	return f.r
}
