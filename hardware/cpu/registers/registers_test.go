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

package registers_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/riscv32/hardware/cpu/registers"
	"github.com/jetsetilly/riscv32/test"
)

func TestReadWrite(t *testing.T) {
	var f registers.File

	for r := 1; r < registers.NumRegisters; r++ {
		v := uint32(r) * 0x01010101
		f.Write(r, v)
		test.ExpectEquality(t, f.Read(r), v, r)
	}

	f.Write(registers.Zero, 0xdeadbeef)
	test.ExpectEquality(t, f.Read(registers.Zero), uint32(0))

	f.Reset()
	for r := range registers.NumRegisters {
		test.ExpectEquality(t, f.Read(r), uint32(0), r)
	}
}

func TestOutOfRange(t *testing.T) {
	var f registers.File

	f.Write(32, 100)
	test.ExpectEquality(t, f.Read(32), uint32(0))
	f.Write(-1, 100)
	test.ExpectEquality(t, f.Read(-1), uint32(0))

	test.ExpectFailure(t, registers.Valid(32))
	test.ExpectFailure(t, registers.Valid(-1))
	test.ExpectSuccess(t, registers.Valid(0))
	test.ExpectSuccess(t, registers.Valid(31))
}

func TestLabels(t *testing.T) {
	test.ExpectEquality(t, registers.Label(registers.Zero), "zero")
	test.ExpectEquality(t, registers.Label(registers.GP), "gp")
	test.ExpectEquality(t, registers.Label(registers.A0), "a0")
	test.ExpectEquality(t, registers.Label(registers.A7), "a7")
	test.ExpectEquality(t, registers.Label(31), "t6")
}

func TestString(t *testing.T) {
	var f registers.File
	f.Write(8, 0x1234)

	s := f.String()
	test.ExpectEquality(t, strings.Count(s, "\n"), 8)
	test.ExpectSuccess(t, strings.HasPrefix(s, "x0  zero 00000000  x8  s0   00001234"))
}
