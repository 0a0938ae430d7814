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

package memory

import (
	"github.com/jetsetilly/riscv32/logger"
)

// FillValue is the value of a sparse memory byte that has never been written.
const FillValue = 0xff

// Sparse implements the bus.Memory interface with every address valid.
type Sparse struct {
	data map[uint32]uint8

	// permission for the unwritten memory diagnostic
	perm logger.Permission
}

// NewSparse is the preferred method of initialisation for the Sparse type.
// The permission argument controls whether reads of unwritten memory are
// logged. A nil permission disables the diagnostic.
func NewSparse(perm logger.Permission) *Sparse {
	return &Sparse{
		data: make(map[uint32]uint8),
		perm: perm,
	}
}

// Reset clears all memory.
func (mem *Sparse) Reset() {
	clear(mem.data)
}

// BaseAddress implements the bus.Memory interface. Sparse memory starts at
// address zero.
func (mem *Sparse) BaseAddress() uint32 {
	return 0
}

// Written returns true if the address has been written to.
func (mem *Sparse) Written(addr uint32) bool {
	_, ok := mem.data[addr]
	return ok
}

// Len returns the number of bytes that have been written to.
func (mem *Sparse) Len() int {
	return len(mem.data)
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Sparse) Peek(addr uint32) (uint8, bool) {
	v, ok := mem.data[addr]
	if !ok {
		return FillValue, false
	}
	return v, true
}

// Read8 implements the bus.Memory interface.
func (mem *Sparse) Read8(addr uint32) (uint8, error) {
	v, ok := mem.data[addr]
	if !ok {
		if mem.perm != nil {
			logger.Logf(mem.perm, "memory", "read of unwritten address %08x", addr)
		}
		return FillValue, nil
	}
	return v, nil
}

// Write8 implements the bus.Memory interface.
func (mem *Sparse) Write8(addr uint32, data uint8) error {
	mem.data[addr] = data
	return nil
}

// Read16 implements the bus.Memory interface.
func (mem *Sparse) Read16(addr uint32) (uint16, error) {
	lo, _ := mem.Read8(addr)
	hi, _ := mem.Read8(addr + 1)
	return uint16(lo) | uint16(hi)<<8, nil
}

// Write16 implements the bus.Memory interface.
func (mem *Sparse) Write16(addr uint32, data uint16) error {
	mem.data[addr] = uint8(data)
	mem.data[addr+1] = uint8(data >> 8)
	return nil
}

// Read32 implements the bus.Memory interface.
func (mem *Sparse) Read32(addr uint32) (uint32, error) {
	var v uint32
	for i := range uint32(4) {
		b, _ := mem.Read8(addr + i)
		v |= uint32(b) << (i * 8)
	}
	return v, nil
}

// Write32 implements the bus.Memory interface.
func (mem *Sparse) Write32(addr uint32, data uint32) error {
	for i := range uint32(4) {
		mem.data[addr+i] = uint8(data >> (i * 8))
	}
	return nil
}

// LoadSegment implements the bus.Memory interface.
func (mem *Sparse) LoadSegment(addr uint32, data []byte) error {
	for i, b := range data {
		mem.data[addr+uint32(i)] = b
	}
	return nil
}
