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

// Opcodes of the instruction formats understood by the CPU. The opcode is
// the low seven bits of the instruction word.
const (
	Load    = 0x03
	MiscMem = 0x0f
	OpImm   = 0x13
	AUIPC   = 0x17
	Store   = 0x23
	AMO     = 0x2f
	Op      = 0x33
	LUI     = 0x37
	Branch  = 0x63
	JALR    = 0x67
	JAL     = 0x6f
	System  = 0x73
)

// Funct7 values for the OP and OP-IMM formats.
const (
	Funct7Base = 0x00
	Funct7Alt  = 0x20
	Funct7MExt = 0x01
)

// Funct5 values for the AMO format.
const (
	AmoADD  = 0x00
	AmoSWAP = 0x01
	LR      = 0x02
	SC      = 0x03
	AmoXOR  = 0x04
	AmoOR   = 0x08
	AmoAND  = 0x0c
	AmoMIN  = 0x10
	AmoMAX  = 0x14
	AmoMINU = 0x18
	AmoMAXU = 0x1c
)

// Funct12 values for the SYSTEM format when funct3 is zero.
const (
	ECALL  = 0x000
	EBREAK = 0x001
	MRET   = 0x302
)
