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

// Package instructions defines the RISC-V instruction word and the extraction
// of its fields. Field extraction is pure and has no side effects.
//
// Immediate values are returned sign-extended to 32 bits where the encoding
// calls for it. The split immediate fields of the S, B and J formats are
// reassembled by the ImmS(), ImmB() and ImmJ() functions.
//
// The Encode functions are the inverse of the field extraction functions and
// are used to build instruction words for testing and by tools that need to
// assemble individual instructions.
package instructions
