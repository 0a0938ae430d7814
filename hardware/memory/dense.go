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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/faults"
)

// DenseBase is the address of the first byte of dense memory.
const DenseBase = 0x80000000

// DefaultDenseSize is the size of dense memory when no other size is
// specified.
const DefaultDenseSize = 4 * 1024 * 1024

// Dense implements the bus.Memory interface with a contiguous block of
// bytes and strict alignment.
type Dense struct {
	data []uint8
	base uint32
}

// NewDense is the preferred method of initialisation for the Dense type. A
// size of zero or less will create memory of DefaultDenseSize bytes.
func NewDense(size int) *Dense {
	if size <= 0 {
		size = DefaultDenseSize
	}
	return &Dense{
		data: make([]uint8, size),
		base: DenseBase,
	}
}

// Reset clears all memory to zero.
func (mem *Dense) Reset() {
	clear(mem.data)
}

// BaseAddress implements the bus.Memory interface.
func (mem *Dense) BaseAddress() uint32 {
	return mem.base
}

// Size returns the number of bytes of memory.
func (mem *Dense) Size() int {
	return len(mem.data)
}

// offset converts an address to an index into the data array. the access
// must fit entirely inside the array
func (mem *Dense) offset(event string, addr uint32, width int) (int, error) {
	if addr < mem.base {
		return 0, curated.Errorf(faults.MemoryAccess, fmt.Sprintf("%s below base address (%08x)", event, addr))
	}
	idx := int(addr - mem.base)
	if idx+width > len(mem.data) {
		return 0, curated.Errorf(faults.MemoryAccess, fmt.Sprintf("%s out of range (%08x)", event, addr))
	}
	return idx, nil
}

// aligned checks that the address is a multiple of width
func aligned(event string, addr uint32, width uint32) error {
	if addr%width != 0 {
		return curated.Errorf(faults.MemoryAccess, fmt.Sprintf("%s misaligned (%08x)", event, addr))
	}
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Dense) Peek(addr uint32) (uint8, bool) {
	idx, err := mem.offset("peek", addr, 1)
	if err != nil {
		return 0, false
	}
	return mem.data[idx], true
}

// Read8 implements the bus.Memory interface.
func (mem *Dense) Read8(addr uint32) (uint8, error) {
	idx, err := mem.offset("read 8bit", addr, 1)
	if err != nil {
		return 0, err
	}
	return mem.data[idx], nil
}

// Write8 implements the bus.Memory interface.
func (mem *Dense) Write8(addr uint32, data uint8) error {
	idx, err := mem.offset("write 8bit", addr, 1)
	if err != nil {
		return err
	}
	mem.data[idx] = data
	return nil
}

// Read16 implements the bus.Memory interface.
func (mem *Dense) Read16(addr uint32) (uint16, error) {
	if err := aligned("read 16bit", addr, 2); err != nil {
		return 0, err
	}
	idx, err := mem.offset("read 16bit", addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(mem.data[idx:]), nil
}

// Write16 implements the bus.Memory interface.
func (mem *Dense) Write16(addr uint32, data uint16) error {
	if err := aligned("write 16bit", addr, 2); err != nil {
		return err
	}
	idx, err := mem.offset("write 16bit", addr, 2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(mem.data[idx:], data)
	return nil
}

// Read32 implements the bus.Memory interface.
func (mem *Dense) Read32(addr uint32) (uint32, error) {
	if err := aligned("read 32bit", addr, 4); err != nil {
		return 0, err
	}
	idx, err := mem.offset("read 32bit", addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(mem.data[idx:]), nil
}

// Write32 implements the bus.Memory interface.
func (mem *Dense) Write32(addr uint32, data uint32) error {
	if err := aligned("write 32bit", addr, 4); err != nil {
		return err
	}
	idx, err := mem.offset("write 32bit", addr, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(mem.data[idx:], data)
	return nil
}

// LoadSegment implements the bus.Memory interface. Nothing is written if any
// part of the segment is outside of memory.
func (mem *Dense) LoadSegment(addr uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	idx, err := mem.offset("load segment", addr, len(data))
	if err != nil {
		return err
	}
	copy(mem.data[idx:], data)
	return nil
}
