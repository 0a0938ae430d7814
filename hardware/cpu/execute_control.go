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

func (mc *CPU) executeBranch(w instructions.Word) error {
	rs1, rs2 := w.Rs1(), w.Rs2()
	if err := checkRegisters(w, rs1, rs2); err != nil {
		return err
	}

	a := mc.Reg.Read(rs1)
	b := mc.Reg.Read(rs2)

	var taken bool

	switch w.Funct3() {
	case 0b000: // BEQ
		taken = a == b
	case 0b001: // BNE
		taken = a != b
	case 0b100: // BLT
		taken = int32(a) < int32(b)
	case 0b101: // BGE
		taken = int32(a) >= int32(b)
	case 0b110: // BLTU
		taken = a < b
	case 0b111: // BGEU
		taken = a >= b
	default:
		return unsupported(w, fmt.Sprintf("BRANCH with funct3 %d", w.Funct3()))
	}

	if taken {
		mc.PC += w.ImmB()
	} else {
		mc.PC += 4
	}

	return nil
}

func (mc *CPU) executeLUI(w instructions.Word) error {
	rd := w.Rd()
	if err := checkRegisters(w, rd); err != nil {
		return err
	}

	mc.Reg.Write(rd, w.ImmU())
	mc.PC += 4
	return nil
}

func (mc *CPU) executeAUIPC(w instructions.Word) error {
	rd := w.Rd()
	if err := checkRegisters(w, rd); err != nil {
		return err
	}

	mc.Reg.Write(rd, mc.PC+w.ImmU())
	mc.PC += 4
	return nil
}

func (mc *CPU) executeJAL(w instructions.Word) error {
	rd := w.Rd()
	if err := checkRegisters(w, rd); err != nil {
		return err
	}

	mc.Reg.Write(rd, mc.PC+4)
	mc.PC += w.ImmJ()
	return nil
}

func (mc *CPU) executeJALR(w instructions.Word) error {
	if w.Funct3() != 0 {
		return unsupported(w, fmt.Sprintf("JALR with funct3 %d", w.Funct3()))
	}

	rd, rs1 := w.Rd(), w.Rs1()
	if err := checkRegisters(w, rd, rs1); err != nil {
		return err
	}

	// target must be calculated before rd is written because rd and rs1 can
	// be the same register
	target := (mc.Reg.Read(rs1) + w.ImmI()) &^ 1

	mc.Reg.Write(rd, mc.PC+4)
	mc.PC = target
	return nil
}
