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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/riscv32/disassembly"
	"github.com/jetsetilly/riscv32/elfloader"
	"github.com/jetsetilly/riscv32/elfloader/elftest"
	"github.com/jetsetilly/riscv32/hardware/cpu/csr"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
	"github.com/jetsetilly/riscv32/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		w        instructions.Word
		expected string
	}{
		{0x02a00093, "addi ra, zero, 42"},
		{instructions.EncodeI(instructions.OpImm, 10, 0b000, 10, -1), "addi a0, a0, -1"},
		{instructions.EncodeI(instructions.OpImm, 5, 0b101, 5, 0x400|3), "srai t0, t0, 3"},
		{0x002081b3, "add gp, ra, sp"},
		{0x402081b3, "sub gp, ra, sp"},
		{instructions.EncodeR(instructions.Op, 2, 0b000, 1, 1, instructions.Funct7MExt), "mul sp, ra, ra"},
		{instructions.EncodeR(instructions.Op, 2, 0b111, 1, 1, instructions.Funct7MExt), "remu sp, ra, ra"},
		{instructions.EncodeI(instructions.Load, 10, 0b010, 2, 8), "lw a0, 8(sp)"},
		{instructions.EncodeS(instructions.Store, 0b000, 2, 11, -4), "sb a1, -4(sp)"},
		{instructions.EncodeU(instructions.LUI, 5, 0x10000000), "lui t0, 0x10000"},
		{instructions.EncodeI(instructions.JALR, 0, 0, 1, 0), "jalr zero, 0(ra)"},
		{instructions.EncodeI(instructions.System, 0, 0, 0, instructions.ECALL), "ecall"},
		{instructions.EncodeI(instructions.System, 0, 0, 0, instructions.MRET), "mret"},
		{instructions.EncodeCSR(0b001, 10, 11, csr.MScratch), "csrrw a0, mscratch, a1"},
		{instructions.EncodeCSR(0b110, 0, 4, csr.MStatus), "csrrsi zero, mstatus, 4"},
		{instructions.EncodeAMO(instructions.AmoADD, 10, 11, 12), "amoadd.w a0, a2, (a1)"},
		{instructions.EncodeAMO(instructions.LR, 10, 11, 0), "lr.w a0, (a1)"},
		{instructions.EncodeI(instructions.MiscMem, 0, 0, 0, 0x0ff), "fence"},
		{0x0000007f, ".word 0x0000007f"},
		{0x00000000, ".word 0x00000000"},
		{instructions.EncodeI(instructions.Load, 1, 0b011, 0, 0), ".word 0x00003083"},
	}

	for _, tt := range tests {
		e := disassembly.Decode(0x1000, tt.w)
		test.ExpectEquality(t, e.Instruction(), tt.expected, tt.expected)
	}
}

func TestFlowTargets(t *testing.T) {
	e := disassembly.Decode(1000, instructions.EncodeJ(instructions.JAL, 1, 8))
	test.ExpectEquality(t, e.Instruction(), "jal ra, 0x000003f0")

	e = disassembly.Decode(0x200, instructions.EncodeB(instructions.Branch, 0b001, 10, 0, -16))
	test.ExpectEquality(t, e.Instruction(), "bne a0, zero, 0x000001f0")
}

func TestEntryString(t *testing.T) {
	e := disassembly.Decode(0x80000000, 0x02a00093)
	test.ExpectEquality(t, e.String(), "80000000: 02a00093  addi ra, zero, 42")
	test.ExpectFailure(t, e.Invalid)

	e = disassembly.Decode(0x80000000, 0xffffffff)
	test.ExpectSuccess(t, e.Invalid)
}

func TestDisassemble(t *testing.T) {
	path := elftest.WriteFile(t, "prog", 0x1000,
		elftest.Segment{Addr: 0x1000, Data: elftest.Words(instructions.Word(0x02a00093), 0x00000073), Executable: true},
		elftest.Segment{Addr: 0x2000, Data: []byte{1, 2, 3, 4}},
	)

	f, err := elfloader.Open(path)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	disassembly.Disassemble(w, f)

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "00001000: 02a00093  addi ra, zero, 42\n"))
	test.ExpectSuccess(t, strings.Contains(s, "00001004: 00000073  ecall\n"))
	test.ExpectFailure(t, strings.Contains(s, "00002000"))
}
