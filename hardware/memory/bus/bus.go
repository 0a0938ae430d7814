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

package bus

// Memory defines the operations of an addressable memory. Multi-byte
// accesses are little-endian. Whether misaligned multi-byte accesses are
// permitted depends on the implementation.
type Memory interface {
	Read8(addr uint32) (uint8, error)
	Write8(addr uint32, data uint8) error
	Read16(addr uint32) (uint16, error)
	Write16(addr uint32, data uint16) error
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, data uint32) error

	// LoadSegment writes a sequence of bytes starting at addr. It is used by
	// program loaders before execution starts
	LoadSegment(addr uint32, data []byte) error

	// the lowest valid address of the memory
	BaseAddress() uint32
}

// Peripheral defines the operations of a memory mapped device. A device
// occupies the address range [BaseAddress(), BaseAddress()+Size()).
//
// The Read() and Write() functions receive an offset relative to the
// device's base address. Only word sized access is supported.
type Peripheral interface {
	Read(offset uint32) (uint32, error)
	Write(offset uint32, data uint32) error
	BaseAddress() uint32
	Size() uint32
}

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The Dispatcher type in the cpubus package implements this interface and
// routes the access to main memory or to a peripheral as appropriate. Meaning
// that the CPU need not care which part of the address space it is accessing.
type CPUBus interface {
	Read8(addr uint32) (uint8, error)
	Write8(addr uint32, data uint8) error
	Read16(addr uint32) (uint16, error)
	Write16(addr uint32, data uint16) error
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, data uint32) error
}

// DebuggerBus defines the meta-operations for memory. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. A Peek() never produces a diagnostic and
// never touches a peripheral.
type DebuggerBus interface {
	Peek(addr uint32) (uint8, bool)
}
