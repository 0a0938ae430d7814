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

	"github.com/jetsetilly/riscv32/hardware/cpu/csr"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
	"github.com/jetsetilly/riscv32/hardware/cpu/registers"
)

func reg(r int) string {
	return registers.Label(r)
}

func imm(v uint32) int32 {
	return int32(v)
}

var opImmOperators = [8]string{"addi", "slli", "slti", "sltiu", "xori", "", "ori", "andi"}
var opOperators = [8]string{"add", "sll", "slt", "sltu", "xor", "srl", "or", "and"}
var mextOperators = [8]string{"mul", "mulh", "mulhsu", "mulhu", "div", "divu", "rem", "remu"}
var loadOperators = [8]string{"lb", "lh", "lw", "", "lbu", "lhu", "", ""}
var storeOperators = [8]string{"sb", "sh", "sw", "", "", "", "", ""}
var branchOperators = [8]string{"beq", "bne", "", "", "blt", "bge", "bltu", "bgeu"}
var csrOperators = [8]string{"", "csrrw", "csrrs", "csrrc", "", "csrrwi", "csrrsi", "csrrci"}

var amoOperators = map[uint8]string{
	instructions.LR:      "lr.w",
	instructions.SC:      "sc.w",
	instructions.AmoSWAP: "amoswap.w",
	instructions.AmoADD:  "amoadd.w",
	instructions.AmoXOR:  "amoxor.w",
	instructions.AmoAND:  "amoand.w",
	instructions.AmoOR:   "amoor.w",
	instructions.AmoMIN:  "amomin.w",
	instructions.AmoMAX:  "amomax.w",
	instructions.AmoMINU: "amominu.w",
	instructions.AmoMAXU: "amomaxu.w",
}

// Decode disassembles the instruction word found at address.
func Decode(addr uint32, w instructions.Word) Entry {
	e := Entry{
		Addr: addr,
		Word: uint32(w),
	}

	e.Operator, e.Operand = decode(addr, w)
	if e.Operator == "" {
		e.Invalid = true
		e.Operator = ".word"
		e.Operand = fmt.Sprintf("0x%08x", uint32(w))
	}

	return e
}

// decode returns an empty operator if the word is not a valid instruction
func decode(addr uint32, w instructions.Word) (string, string) {
	rd, rs1, rs2 := reg(w.Rd()), reg(w.Rs1()), reg(w.Rs2())

	switch w.Opcode() {
	case instructions.OpImm:
		switch w.Funct3() {
		case 0b001:
			if w.Funct7() != instructions.Funct7Base {
				return "", ""
			}
			return "slli", fmt.Sprintf("%s, %s, %d", rd, rs1, w.Shamt())
		case 0b101:
			switch w.Funct7() {
			case instructions.Funct7Base:
				return "srli", fmt.Sprintf("%s, %s, %d", rd, rs1, w.Shamt())
			case instructions.Funct7Alt:
				return "srai", fmt.Sprintf("%s, %s, %d", rd, rs1, w.Shamt())
			}
			return "", ""
		}
		return opImmOperators[w.Funct3()], fmt.Sprintf("%s, %s, %d", rd, rs1, imm(w.ImmI()))

	case instructions.Op:
		operands := fmt.Sprintf("%s, %s, %s", rd, rs1, rs2)
		switch w.Funct7() {
		case instructions.Funct7Base:
			return opOperators[w.Funct3()], operands
		case instructions.Funct7Alt:
			switch w.Funct3() {
			case 0b000:
				return "sub", operands
			case 0b101:
				return "sra", operands
			}
		case instructions.Funct7MExt:
			return mextOperators[w.Funct3()], operands
		}
		return "", ""

	case instructions.Load:
		return loadOperators[w.Funct3()], fmt.Sprintf("%s, %d(%s)", rd, imm(w.ImmI()), rs1)

	case instructions.Store:
		return storeOperators[w.Funct3()], fmt.Sprintf("%s, %d(%s)", rs2, imm(w.ImmS()), rs1)

	case instructions.Branch:
		return branchOperators[w.Funct3()], fmt.Sprintf("%s, %s, 0x%08x", rs1, rs2, addr+w.ImmB())

	case instructions.LUI:
		return "lui", fmt.Sprintf("%s, 0x%05x", rd, w.ImmU()>>12)

	case instructions.AUIPC:
		return "auipc", fmt.Sprintf("%s, 0x%05x", rd, w.ImmU()>>12)

	case instructions.JAL:
		return "jal", fmt.Sprintf("%s, 0x%08x", rd, addr+w.ImmJ())

	case instructions.JALR:
		if w.Funct3() != 0 {
			return "", ""
		}
		return "jalr", fmt.Sprintf("%s, %d(%s)", rd, imm(w.ImmI()), rs1)

	case instructions.System:
		if w.Funct3() == 0 {
			switch w.Funct12() {
			case instructions.ECALL:
				return "ecall", ""
			case instructions.EBREAK:
				return "ebreak", ""
			case instructions.MRET:
				return "mret", ""
			}
			return "", ""
		}
		op := csrOperators[w.Funct3()]
		if w.Funct3()&0b100 == 0b100 {
			return op, fmt.Sprintf("%s, %s, %d", rd, csr.Label(w.CSR()), w.Zimm())
		}
		return op, fmt.Sprintf("%s, %s, %s", rd, csr.Label(w.CSR()), rs1)

	case instructions.AMO:
		if w.Funct3() != 0b010 {
			return "", ""
		}
		op, ok := amoOperators[w.Funct5()]
		if !ok {
			return "", ""
		}
		if w.Funct5() == instructions.LR {
			return op, fmt.Sprintf("%s, (%s)", rd, rs1)
		}
		return op, fmt.Sprintf("%s, %s, (%s)", rd, rs2, rs1)

	case instructions.MiscMem:
		switch w.Funct3() {
		case 0b000:
			return "fence", ""
		case 0b001:
			return "fence.i", ""
		}
	}

	return "", ""
}
