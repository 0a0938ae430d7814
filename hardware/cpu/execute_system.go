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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
)

// executeSystem returns true if the instruction was an environment call
func (mc *CPU) executeSystem(w instructions.Word) (bool, error) {
	if w.Funct3() == 0b000 {
		switch w.Funct12() {
		case instructions.ECALL:
			// the PC is not advanced
			return true, nil
		case instructions.EBREAK:
			return false, unsupported(w, "EBREAK")
		case instructions.MRET:
			// there is only machine mode so there is nothing to return to
			mc.PC += 4
			return false, nil
		}
		return false, unsupported(w, fmt.Sprintf("SYSTEM with funct12 %#03x", w.Funct12()))
	}

	return false, mc.executeCSR(w)
}

func (mc *CPU) executeCSR(w instructions.Word) error {
	rd, rs1 := w.Rd(), w.Rs1()
	if err := checkRegisters(w, rd, rs1); err != nil {
		return err
	}

	idx := w.CSR()

	// the source operand must be read before rd is written because rd and
	// rs1 can be the same register
	var src uint32
	if w.Funct3()&0b100 == 0b100 {
		src = w.Zimm()
	} else {
		src = mc.Reg.Read(rs1)
	}

	old := mc.CSR.Read(idx)

	switch w.Funct3() {
	case 0b001, 0b101: // CSRRW, CSRRWI
		mc.CSR.Write(idx, src)
	case 0b010, 0b110: // CSRRS, CSRRSI
		if src != 0 {
			mc.CSR.Write(idx, old|src)
		}
	case 0b011, 0b111: // CSRRC, CSRRCI
		if src != 0 {
			mc.CSR.Write(idx, old&^src)
		}
	default:
		return unsupported(w, fmt.Sprintf("SYSTEM with funct3 %d", w.Funct3()))
	}

	if rd != 0 {
		mc.Reg.Write(rd, old)
	}

	mc.PC += 4
	return nil
}

func (mc *CPU) executeMiscMem(w instructions.Word) error {
	switch w.Funct3() {
	case 0b000: // FENCE
	case 0b001: // FENCE.I
	default:
		return unsupported(w, fmt.Sprintf("MISC-MEM with funct3 %d", w.Funct3()))
	}

	// a single hart with no caches has nothing to order
	mc.PC += 4
	return nil
}
