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

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/riscv32/elfloader/elftest"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
	"github.com/jetsetilly/riscv32/hardware/cpu/registers"
	"github.com/jetsetilly/riscv32/test"
)

func addi(rd, rs1 int, imm int32) instructions.Word {
	return instructions.EncodeI(instructions.OpImm, rd, 0, rs1, imm)
}

var ecall = instructions.EncodeI(instructions.System, 0, 0, 0, instructions.ECALL)

func writeProgram(t *testing.T, dir string, name string, words ...instructions.Word) string {
	t.Helper()
	data := elftest.Build(elftest.RISCV, 0x1000, elftest.Segment{
		Addr:       0x1000,
		Data:       elftest.Words(words...),
		Executable: true,
	})
	return elftest.WriteData(t, dir, name, data)
}

func exitProgram(t *testing.T, dir string, name string, testnum, code int32) string {
	t.Helper()
	return writeProgram(t, dir, name,
		addi(registers.A7, 0, 93),
		addi(registers.GP, 0, testnum),
		addi(registers.A0, 0, code),
		ecall,
	)
}

func TestRunMode(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "prog", addi(1, 0, 42), addi(2, 1, 1), ecall)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{path}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "executed 3 instructions: environment call"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Final PC: 0x00001008\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "-limit", "1", path}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "executed 1 instructions: instruction limit reached"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Final PC: 0x00001004\n"))
}

func TestTestMode(t *testing.T) {
	dir := t.TempDir()
	pass := exitProgram(t, dir, "pass", 1, 0)
	fail := exitProgram(t, dir, "fail", 2, 5)
	unknown := writeProgram(t, dir, "unknown", ecall)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"TEST", pass}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "riscv-tests: PASS\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"TEST", fail}, w), 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "riscv-tests: FAIL (code: 0x5)\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"TEST", unknown}, w), 2)
	test.ExpectSuccess(t, strings.Contains(w.String(), "riscv-tests: UNKNOWN\n"))
}

func TestSuiteMode(t *testing.T) {
	dir := t.TempDir()
	exitProgram(t, dir, "a", 1, 0)
	exitProgram(t, dir, "b", 1, 0)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"SUITE", "-colour=false", dir}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "summary: 2/2 tests passed\n"))

	exitProgram(t, dir, "c", 3, 1)
	w.Clear()
	test.ExpectEquality(t, launch([]string{"SUITE", "-colour=false", dir}, w), 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "summary: 2/3 tests passed\n"))
}

func TestDisasmMode(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "prog", addi(1, 0, 42), ecall)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"DISASM", path}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "00001000: 02a00093  addi ra, zero, 42\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "00001004: 00000073  ecall\n"))
}

func TestPerformanceMode(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "prog", ecall)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-duration", "1s", path}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "MIPS (1 instructions"))

	loop := writeProgram(t, t.TempDir(), "loop", instructions.EncodeJ(instructions.JAL, 0, 0))
	w.Clear()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-limit", "100", "-duration", "10s", loop}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "MIPS (100 instructions"))
}

func TestVersion(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-version"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "riscv32 "))
}

func TestErrors(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w), exitParseError)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN"}, w), exitModeError)
	test.ExpectSuccess(t, strings.Contains(w.String(), "ELF binary required"))

	w.Clear()
	missing := filepath.Join(t.TempDir(), "missing")
	test.ExpectEquality(t, launch([]string{"RUN", missing}, w), exitModeError)
	test.ExpectSuccess(t, strings.Contains(w.String(), "file not found"))

	w.Clear()
	path := writeProgram(t, t.TempDir(), "prog", ecall)
	test.ExpectEquality(t, launch([]string{"RUN", "-memory", "paged", path}, w), exitModeError)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unknown memory type"))
}
