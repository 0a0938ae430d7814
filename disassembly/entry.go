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

package disassembly

import (
	"fmt"
)

// Entry is a single disassembled instruction.
type Entry struct {
	// the address of the instruction
	Addr uint32

	// the instruction word
	Word uint32

	// mnemonic and operands of the instruction
	Operator string
	Operand  string

	// the word is not a valid instruction
	Invalid bool
}

// Instruction returns the operator and operand as a single string.
func (e Entry) Instruction() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

func (e Entry) String() string {
	return fmt.Sprintf("%08x: %08x  %s", e.Addr, e.Word, e.Instruction())
}
