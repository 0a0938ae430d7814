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

package instructions

func reg(r int) uint32 {
	return uint32(r) & 0x1f
}

// EncodeR creates an R format instruction.
func EncodeR(opcode uint8, rd int, funct3 uint8, rs1 int, rs2 int, funct7 uint8) Word {
	return Word(uint32(funct7)<<25 | reg(rs2)<<20 | reg(rs1)<<15 |
		uint32(funct3&0x7)<<12 | reg(rd)<<7 | uint32(opcode&0x7f))
}

// EncodeI creates an I format instruction. Only the low 12 bits of the
// immediate are used.
func EncodeI(opcode uint8, rd int, funct3 uint8, rs1 int, imm int32) Word {
	return Word((uint32(imm)&0xfff)<<20 | reg(rs1)<<15 |
		uint32(funct3&0x7)<<12 | reg(rd)<<7 | uint32(opcode&0x7f))
}

// EncodeS creates an S format instruction. Only the low 12 bits of the
// immediate are used.
func EncodeS(opcode uint8, funct3 uint8, rs1 int, rs2 int, imm int32) Word {
	v := uint32(imm) & 0xfff
	return Word((v>>5)<<25 | reg(rs2)<<20 | reg(rs1)<<15 |
		uint32(funct3&0x7)<<12 | (v&0x1f)<<7 | uint32(opcode&0x7f))
}

// EncodeB creates a B format instruction. The offset should be a multiple
// of two in the range -4096 to 4094.
func EncodeB(opcode uint8, funct3 uint8, rs1 int, rs2 int, offset int32) Word {
	v := uint32(offset) & 0x1fff
	return Word(((v>>12)&0x1)<<31 | ((v>>5)&0x3f)<<25 | reg(rs2)<<20 |
		reg(rs1)<<15 | uint32(funct3&0x7)<<12 | ((v>>1)&0xf)<<8 |
		((v>>11)&0x1)<<7 | uint32(opcode&0x7f))
}

// EncodeU creates a U format instruction. The low 12 bits of the immediate
// are ignored.
func EncodeU(opcode uint8, rd int, imm uint32) Word {
	return Word(imm&0xfffff000 | reg(rd)<<7 | uint32(opcode&0x7f))
}

// EncodeJ creates a J format instruction. The offset should be a multiple
// of two in the range -1MiB to 1MiB-2.
func EncodeJ(opcode uint8, rd int, offset int32) Word {
	v := uint32(offset) & 0x1fffff
	return Word(((v>>20)&0x1)<<31 | ((v>>1)&0x3ff)<<21 | ((v>>11)&0x1)<<20 |
		((v>>12)&0xff)<<12 | reg(rd)<<7 | uint32(opcode&0x7f))
}

// EncodeAMO creates an instruction in the AMO format with the aq and rl bits
// cleared. The funct3 field is always 2 (word width).
func EncodeAMO(funct5 uint8, rd int, rs1 int, rs2 int) Word {
	return EncodeR(AMO, rd, 0x2, rs1, rs2, (funct5&0x1f)<<2)
}

// EncodeCSR creates a CSR instruction in the SYSTEM format. For the
// immediate forms the rs1 argument is the 5-bit immediate.
func EncodeCSR(funct3 uint8, rd int, rs1 int, csr uint16) Word {
	return EncodeI(System, rd, funct3, rs1, int32(csr&0xfff))
}
