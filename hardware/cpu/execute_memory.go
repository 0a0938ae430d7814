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

func (mc *CPU) executeLoad(w instructions.Word) error {
	rd, rs1 := w.Rd(), w.Rs1()
	if err := checkRegisters(w, rd, rs1); err != nil {
		return err
	}

	addr := mc.Reg.Read(rs1) + w.ImmI()

	var v uint32

	switch w.Funct3() {
	case 0b000: // LB
		b, err := mc.mem.Read8(addr)
		if err != nil {
			return err
		}
		v = uint32(int32(int8(b)))
	case 0b001: // LH
		h, err := mc.mem.Read16(addr)
		if err != nil {
			return err
		}
		v = uint32(int32(int16(h)))
	case 0b010: // LW
		var err error
		v, err = mc.mem.Read32(addr)
		if err != nil {
			return err
		}
	case 0b100: // LBU
		b, err := mc.mem.Read8(addr)
		if err != nil {
			return err
		}
		v = uint32(b)
	case 0b101: // LHU
		h, err := mc.mem.Read16(addr)
		if err != nil {
			return err
		}
		v = uint32(h)
	default:
		return unsupported(w, fmt.Sprintf("LOAD with funct3 %d", w.Funct3()))
	}

	mc.Reg.Write(rd, v)
	mc.PC += 4
	return nil
}

func (mc *CPU) executeStore(w instructions.Word) error {
	rs1, rs2 := w.Rs1(), w.Rs2()
	if err := checkRegisters(w, rs1, rs2); err != nil {
		return err
	}

	addr := mc.Reg.Read(rs1) + w.ImmS()
	v := mc.Reg.Read(rs2)

	var err error

	switch w.Funct3() {
	case 0b000: // SB
		err = mc.mem.Write8(addr, uint8(v))
	case 0b001: // SH
		err = mc.mem.Write16(addr, uint16(v))
	case 0b010: // SW
		err = mc.mem.Write32(addr, v)
	default:
		return unsupported(w, fmt.Sprintf("STORE with funct3 %d", w.Funct3()))
	}

	if err != nil {
		return err
	}

	mc.PC += 4
	return nil
}

// executeAMO implements the A extension. the aq and rl bits are accepted but
// have no effect
func (mc *CPU) executeAMO(w instructions.Word) error {
	if w.Funct3() != 0b010 {
		return unsupported(w, fmt.Sprintf("AMO with funct3 %d", w.Funct3()))
	}

	rd, rs1, rs2 := w.Rd(), w.Rs1(), w.Rs2()
	if err := checkRegisters(w, rd, rs1, rs2); err != nil {
		return err
	}

	addr := mc.Reg.Read(rs1)
	src := mc.Reg.Read(rs2)

	switch w.Funct5() {
	case instructions.LR:
		v, err := mc.mem.Read32(addr)
		if err != nil {
			return err
		}
		mc.Reg.Write(rd, v)
		mc.PC += 4
		return nil

	case instructions.SC:
		// reservations are not tracked. the store always succeeds
		if err := mc.mem.Write32(addr, src); err != nil {
			return err
		}
		mc.Reg.Write(rd, 0)
		mc.PC += 4
		return nil
	}

	var op func(old uint32) uint32

	switch w.Funct5() {
	case instructions.AmoSWAP:
		op = func(_ uint32) uint32 { return src }
	case instructions.AmoADD:
		op = func(old uint32) uint32 { return old + src }
	case instructions.AmoXOR:
		op = func(old uint32) uint32 { return old ^ src }
	case instructions.AmoAND:
		op = func(old uint32) uint32 { return old & src }
	case instructions.AmoOR:
		op = func(old uint32) uint32 { return old | src }
	case instructions.AmoMIN:
		op = func(old uint32) uint32 { return uint32(min(int32(old), int32(src))) }
	case instructions.AmoMAX:
		op = func(old uint32) uint32 { return uint32(max(int32(old), int32(src))) }
	case instructions.AmoMINU:
		op = func(old uint32) uint32 { return min(old, src) }
	case instructions.AmoMAXU:
		op = func(old uint32) uint32 { return max(old, src) }
	default:
		return unsupported(w, fmt.Sprintf("AMO with funct5 %#02x", w.Funct5()))
	}

	old, err := mc.mem.Read32(addr)
	if err != nil {
		return err
	}

	if err := mc.mem.Write32(addr, op(old)); err != nil {
		return err
	}

	mc.Reg.Write(rd, old)
	mc.PC += 4
	return nil
}
