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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/hardware/cpu"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
	"github.com/jetsetilly/riscv32/hardware/cpu/result"
	"github.com/jetsetilly/riscv32/hardware/memory"
	"github.com/jetsetilly/riscv32/hardware/memory/bus"
	"github.com/jetsetilly/riscv32/hardware/memory/cpubus"
	"github.com/jetsetilly/riscv32/test"
)

// newCPU creates a CPU with sparse memory and no peripherals
func newCPU() (*cpu.CPU, *memory.Sparse) {
	mem := memory.NewSparse(nil)
	return cpu.NewCPU(cpubus.NewDispatcher(mem, nil)), mem
}

// putInstructions writes instructions to memory starting at origin. returns
// the address following the last instruction
func putInstructions(mem bus.Memory, origin uint32, words ...instructions.Word) uint32 {
	for i, w := range words {
		mem.Write32(origin+uint32(i)*4, uint32(w))
	}
	return origin + uint32(len(words))*4
}

// step executes a single instruction and demands that it continues
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	r := mc.Step()
	if r.Category != result.Continue {
		t.Fatalf("unexpected step result: %s", r)
	}
}

// stepFault executes a single instruction and expects it to fault with an
// error of the specified pattern. the PC must not have changed
func stepFault(t *testing.T, mc *cpu.CPU, pattern string) {
	t.Helper()
	pc := mc.PC
	r := mc.Step()
	test.ExpectEquality(t, r.Category, result.Fault)
	test.ExpectSuccess(t, curated.Is(r.Err, pattern), r.Err)
	test.ExpectEquality(t, mc.PC, pc)
}

// run executes the instructions placed at origin one after the other
func run(t *testing.T, mc *cpu.CPU, mem bus.Memory, origin uint32, words ...instructions.Word) {
	t.Helper()
	putInstructions(mem, origin, words...)
	mc.PC = origin
	for range words {
		step(t, mc)
	}
}

// instruction encoding shorthands

func addi(rd, rs1 int, imm int32) instructions.Word {
	return instructions.EncodeI(instructions.OpImm, rd, 0b000, rs1, imm)
}

func opImm(funct3 uint8, rd, rs1 int, imm int32) instructions.Word {
	return instructions.EncodeI(instructions.OpImm, rd, funct3, rs1, imm)
}

func op(funct7 uint8, funct3 uint8, rd, rs1, rs2 int) instructions.Word {
	return instructions.EncodeR(instructions.Op, rd, funct3, rs1, rs2, funct7)
}

func mext(funct3 uint8, rd, rs1, rs2 int) instructions.Word {
	return op(instructions.Funct7MExt, funct3, rd, rs1, rs2)
}

func load(funct3 uint8, rd, rs1 int, imm int32) instructions.Word {
	return instructions.EncodeI(instructions.Load, rd, funct3, rs1, imm)
}

func store(funct3 uint8, rs1, rs2 int, imm int32) instructions.Word {
	return instructions.EncodeS(instructions.Store, funct3, rs1, rs2, imm)
}

func branch(funct3 uint8, rs1, rs2 int, offset int32) instructions.Word {
	return instructions.EncodeB(instructions.Branch, funct3, rs1, rs2, offset)
}

func jal(rd int, offset int32) instructions.Word {
	return instructions.EncodeJ(instructions.JAL, rd, offset)
}

func jalr(rd, rs1 int, imm int32) instructions.Word {
	return instructions.EncodeI(instructions.JALR, rd, 0b000, rs1, imm)
}

func amo(funct5 uint8, rd, rs1, rs2 int) instructions.Word {
	return instructions.EncodeAMO(funct5, rd, rs1, rs2)
}

func system(funct12 uint16) instructions.Word {
	return instructions.EncodeI(instructions.System, 0, 0b000, 0, int32(funct12))
}
