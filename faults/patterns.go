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

package faults

// Error patterns. Use with curated.Errorf().
const (
	// the decoder encountered an encoding it does not implement or an
	// operand failed validation
	UnsupportedInstruction = "unsupported instruction: %v"

	// address out of range or misaligned where alignment is enforced
	MemoryAccess = "memory access: %v"

	// loader errors
	FileNotFound     = "file not found: %v"
	InvalidElfFormat = "invalid elf format: %v"
)
