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

// Package memory implements the main memory of the simulated machine. There
// are two implementations with different policies.
//
// Sparse memory treats every 32-bit address as valid. Bytes are stored in a
// map and a byte that has never been written reads as 0xff. Reading such a
// byte also produces a diagnostic log entry, subject to the logging
// permission given at construction. Multi-byte access is composed of
// independent byte accesses and so misaligned access is permitted. Sparse
// memory is the default for the machine.
//
// Dense memory is a contiguous block of bytes beginning at DenseBase.
// Accesses outside the block fail with a faults.MemoryAccess error, as do
// halfword accesses that are not aligned to two bytes and word accesses that
// are not aligned to four bytes. Dense memory is zero initialised.
//
// Both types implement the bus.Memory interface. The CPU never accesses
// memory directly. Accesses are routed through the Dispatcher in the cpubus
// package, which decides whether an address belongs to main memory or to a
// peripheral.
package memory
