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

// Package cpu emulates a 32-bit RISC-V core implementing the RV32I base
// integer instruction set and the M (multiply/divide) and A (atomic)
// extensions. Machine-mode CSRs are supported through the csr package.
//
// The CPU is stepped one instruction at a time with the Step() function. The
// outcome of each step is a result.Result, which says whether execution
// should continue, whether the instruction faulted, or whether the program
// has asked to terminate with an environment call (ECALL).
//
// When an instruction faults no architectural state is changed. In
// particular the PC is left pointing at the faulting instruction. On success
// the PC is advanced exactly once, either to the next instruction or to the
// target of a branch or jump. An ECALL does not advance the PC.
//
// The CPU accesses memory through the bus.CPUBus interface. In the
// simulator this is the Dispatcher in the cpubus package, which routes
// accesses to main memory or to a peripheral.
//
// Arithmetic wraps silently. Division by zero and signed division overflow
// produce the results defined by the RISC-V ISA manual rather than a
// fault. There is no reservation tracking for LR.W and SC.W. SC.W always
// succeeds, which is adequate for a single hart.
package cpu
