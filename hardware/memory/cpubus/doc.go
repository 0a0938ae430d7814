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

// Package cpubus routes memory accesses made by the CPU to either main memory
// or a peripheral. The Dispatcher type implements the bus.CPUBus interface.
//
// Only word sized access to a peripheral is supported. Byte and halfword
// access to a peripheral address fails with a faults.UnsupportedInstruction
// error.
package cpubus
