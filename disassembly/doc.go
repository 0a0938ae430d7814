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

// Package disassembly converts RISC-V instruction words into assembly
// language. Every encoding understood by the cpu package is supported.
// Registers are named with their ABI names. Words that are not valid
// instructions are shown as a .word directive.
//
// The Decode() function disassembles a single instruction. The Disassemble()
// function writes a listing of every executable segment of an ELF file.
package disassembly
