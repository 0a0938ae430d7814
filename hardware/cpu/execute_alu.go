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

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (mc *CPU) executeOpImm(w instructions.Word) error {
	rd, rs1 := w.Rd(), w.Rs1()
	if err := checkRegisters(w, rd, rs1); err != nil {
		return err
	}

	a := mc.Reg.Read(rs1)
	imm := w.ImmI()

	var v uint32

	switch w.Funct3() {
	case 0b000: // ADDI
		v = a + imm
	case 0b010: // SLTI
		v = boolToWord(int32(a) < int32(imm))
	case 0b011: // SLTIU
		v = boolToWord(a < imm)
	case 0b100: // XORI
		v = a ^ imm
	case 0b110: // ORI
		v = a | imm
	case 0b111: // ANDI
		v = a & imm
	case 0b001: // SLLI
		if w.Funct7() != instructions.Funct7Base {
			return unsupported(w, "SLLI with invalid immediate")
		}
		v = a << w.Shamt()
	case 0b101: // SRLI / SRAI
		switch w.Funct7() {
		case instructions.Funct7Base:
			v = a >> w.Shamt()
		case instructions.Funct7Alt:
			v = uint32(int32(a) >> w.Shamt())
		default:
			return unsupported(w, "SRLI/SRAI with invalid immediate")
		}
	}

	mc.Reg.Write(rd, v)
	mc.PC += 4
	return nil
}

func (mc *CPU) executeOp(w instructions.Word) error {
	rd, rs1, rs2 := w.Rd(), w.Rs1(), w.Rs2()
	if err := checkRegisters(w, rd, rs1, rs2); err != nil {
		return err
	}

	a := mc.Reg.Read(rs1)
	b := mc.Reg.Read(rs2)

	var v uint32

	switch w.Funct7() {
	case instructions.Funct7Base:
		switch w.Funct3() {
		case 0b000: // ADD
			v = a + b
		case 0b001: // SLL
			v = a << (b & 0x1f)
		case 0b010: // SLT
			v = boolToWord(int32(a) < int32(b))
		case 0b011: // SLTU
			v = boolToWord(a < b)
		case 0b100: // XOR
			v = a ^ b
		case 0b101: // SRL
			v = a >> (b & 0x1f)
		case 0b110: // OR
			v = a | b
		case 0b111: // AND
			v = a & b
		}
	case instructions.Funct7Alt:
		switch w.Funct3() {
		case 0b000: // SUB
			v = a - b
		case 0b101: // SRA
			v = uint32(int32(a) >> (b & 0x1f))
		default:
			return unsupported(w, fmt.Sprintf("OP with funct7 %#02x and funct3 %d", w.Funct7(), w.Funct3()))
		}
	case instructions.Funct7MExt:
		v = multiplyDivide(w.Funct3(), a, b)
	default:
		return unsupported(w, fmt.Sprintf("OP with funct7 %#02x", w.Funct7()))
	}

	mc.Reg.Write(rd, v)
	mc.PC += 4
	return nil
}

// multiplyDivide implements the M extension. the funct3 argument selects the
// operation
func multiplyDivide(funct3 uint8, a uint32, b uint32) uint32 {
	const minInt32 = 0x80000000
	const minusOne = 0xffffffff

	switch funct3 {
	case 0b000: // MUL
		return a * b
	case 0b001: // MULH
		return uint32((int64(int32(a)) * int64(int32(b))) >> 32)
	case 0b010: // MULHSU
		return uint32((int64(int32(a)) * int64(b)) >> 32)
	case 0b011: // MULHU
		return uint32((uint64(a) * uint64(b)) >> 32)
	case 0b100: // DIV
		if b == 0 {
			return minusOne
		}
		if a == minInt32 && b == minusOne {
			return a
		}
		return uint32(int32(a) / int32(b))
	case 0b101: // DIVU
		if b == 0 {
			return minusOne
		}
		return a / b
	case 0b110: // REM
		if b == 0 {
			return a
		}
		if a == minInt32 && b == minusOne {
			return 0
		}
		return uint32(int32(a) % int32(b))
	case 0b111: // REMU
		if b == 0 {
			return a
		}
		return a % b
	}

	// funct3 is a 3-bit field so this is unreachable
	return 0
}
