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

// Package elfloader loads RISC-V executables in the ELF format. Only 32-bit,
// little-endian files for the RISC-V machine type are accepted.
//
// Loadable program segments (PT_LOAD) are written to memory with the
// SegmentLoader interface, which the hardware.Machine type implements. Bytes
// of a segment that are in memory but not in the file (the .bss section for
// example) are written as zero.
//
// Errors are created with the patterns in the faults package:
// faults.FileNotFound, faults.InvalidElfFormat and, if memory rejects a
// segment, faults.MemoryAccess.
package elfloader
