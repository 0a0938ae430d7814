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

// Word is a single 32-bit RISC-V instruction.
type Word uint32

// Opcode returns bits [6:0].
func (w Word) Opcode() uint8 {
	return uint8(w & 0x7f)
}

// Rd returns the destination register field, bits [11:7].
func (w Word) Rd() int {
	return int((w >> 7) & 0x1f)
}

// Funct3 returns bits [14:12].
func (w Word) Funct3() uint8 {
	return uint8((w >> 12) & 0x07)
}

// Rs1 returns the first source register field, bits [19:15].
func (w Word) Rs1() int {
	return int((w >> 15) & 0x1f)
}

// Rs2 returns the second source register field, bits [24:20].
func (w Word) Rs2() int {
	return int((w >> 20) & 0x1f)
}

// Funct7 returns bits [31:25].
func (w Word) Funct7() uint8 {
	return uint8(w >> 25)
}

// Funct5 returns bits [31:27]. Used by the AMO format.
func (w Word) Funct5() uint8 {
	return uint8(w >> 27)
}

// Funct12 returns bits [31:20] unextended. Used by the SYSTEM format.
func (w Word) Funct12() uint16 {
	return uint16(w >> 20)
}

// CSR returns the CSR index field. The same bits as Funct12().
func (w Word) CSR() uint16 {
	return uint16(w >> 20)
}

// Shamt returns the shift amount of the immediate shift instructions.
func (w Word) Shamt() uint32 {
	return uint32((w >> 20) & 0x1f)
}

// Zimm returns the rs1 field as a zero-extended 5-bit immediate. Used by
// the immediate forms of the CSR instructions.
func (w Word) Zimm() uint32 {
	return uint32(w.Rs1())
}

// ImmI returns the sign-extended 12-bit immediate of the I format.
func (w Word) ImmI() uint32 {
	return uint32(int32(w) >> 20)
}

// ImmS returns the sign-extended 12-bit immediate of the S format, which is
// split between bits [31:25] and [11:7].
func (w Word) ImmS() uint32 {
	v := (uint32(w) >> 25 << 5) | ((uint32(w) >> 7) & 0x1f)
	return signExtend(v, 12)
}

// ImmB returns the sign-extended 13-bit branch offset of the B format. The low
// bit of the offset is always zero.
func (w Word) ImmB() uint32 {
	v := ((uint32(w) >> 31) & 0x1) << 12
	v |= ((uint32(w) >> 7) & 0x1) << 11
	v |= ((uint32(w) >> 25) & 0x3f) << 5
	v |= ((uint32(w) >> 8) & 0xf) << 1
	return signExtend(v, 13)
}

// ImmU returns the upper 20 bits of the instruction with the lower 12 bits
// cleared.
func (w Word) ImmU() uint32 {
	return uint32(w) & 0xfffff000
}

// ImmJ returns the sign-extended 21-bit jump offset of the J format. The low
// bit of the offset is always zero.
func (w Word) ImmJ() uint32 {
	v := ((uint32(w) >> 31) & 0x1) << 20
	v |= ((uint32(w) >> 12) & 0xff) << 12
	v |= ((uint32(w) >> 20) & 0x1) << 11
	v |= ((uint32(w) >> 21) & 0x3ff) << 1
	return signExtend(v, 21)
}

// signExtend the low bits of v
func signExtend(v uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}
