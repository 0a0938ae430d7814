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

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/faults"
	"github.com/jetsetilly/riscv32/hardware/cpu/csr"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
	"github.com/jetsetilly/riscv32/hardware/cpu/registers"
	"github.com/jetsetilly/riscv32/hardware/cpu/result"
	"github.com/jetsetilly/riscv32/hardware/memory/bus"
)

// CPU implements a single RV32IMA hart.
type CPU struct {
	// address of the next instruction to execute
	PC uint32

	Reg registers.File
	CSR *csr.File

	mem bus.CPUBus

	// the result of the most recent call to Step()
	LastResult result.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. All
// registers are zero and the PC is set to zero.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		CSR: csr.NewFile(),
		mem: mem,
	}
}

// Reset all registers, CSRs and the PC to zero.
func (mc *CPU) Reset() {
	mc.PC = 0
	mc.Reg.Reset()
	mc.CSR.Reset()
	mc.LastResult = result.Result{}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%08x\n%s", mc.PC, mc.Reg.String())
}

// unsupported creates an error for an instruction that cannot be executed
func unsupported(w instructions.Word, detail string) error {
	return curated.Errorf(faults.UnsupportedInstruction, fmt.Sprintf("%s (%08x)", detail, uint32(w)))
}

// checkRegisters returns an error if any register index is invalid. the
// decoder never produces an invalid index from a 5-bit field but every
// handler validates its operands regardless
func checkRegisters(w instructions.Word, regs ...int) error {
	for _, r := range regs {
		if !registers.Valid(r) {
			return unsupported(w, fmt.Sprintf("invalid register index %d", r))
		}
	}
	return nil
}

// Step fetches and executes a single instruction.
func (mc *CPU) Step() result.Result {
	mc.LastResult = mc.step()
	return mc.LastResult
}

func (mc *CPU) step() result.Result {
	pc := mc.PC

	if pc%4 != 0 {
		return result.Faulted(pc, 0, curated.Errorf(faults.MemoryAccess, fmt.Sprintf("misaligned instruction fetch (%08x)", pc)))
	}

	v, err := mc.mem.Read32(pc)
	if err != nil {
		return result.Faulted(pc, 0, err)
	}

	w := instructions.Word(v)

	var terminate bool

	switch w.Opcode() {
	case instructions.OpImm:
		err = mc.executeOpImm(w)
	case instructions.Op:
		err = mc.executeOp(w)
	case instructions.Load:
		err = mc.executeLoad(w)
	case instructions.Store:
		err = mc.executeStore(w)
	case instructions.Branch:
		err = mc.executeBranch(w)
	case instructions.LUI:
		err = mc.executeLUI(w)
	case instructions.AUIPC:
		err = mc.executeAUIPC(w)
	case instructions.JAL:
		err = mc.executeJAL(w)
	case instructions.JALR:
		err = mc.executeJALR(w)
	case instructions.System:
		terminate, err = mc.executeSystem(w)
	case instructions.AMO:
		err = mc.executeAMO(w)
	case instructions.MiscMem:
		err = mc.executeMiscMem(w)
	default:
		err = unsupported(w, fmt.Sprintf("unrecognised opcode %#02x", w.Opcode()))
	}

	if err != nil {
		// handlers do not modify state before they are sure of success but
		// the PC is restored in any case
		mc.PC = pc
		return result.Faulted(pc, v, err)
	}

	if terminate {
		return result.Result{Category: result.Terminate, Address: pc, Word: v}
	}

	return result.Result{Category: result.Continue, Address: pc, Word: v}
}
