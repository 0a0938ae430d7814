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

package riscvtests_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/riscv32/elfloader/elftest"
	"github.com/jetsetilly/riscv32/hardware"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
	"github.com/jetsetilly/riscv32/hardware/cpu/registers"
	"github.com/jetsetilly/riscv32/riscvtests"
	"github.com/jetsetilly/riscv32/test"
)

func addi(rd, rs1 int, imm int32) instructions.Word {
	return instructions.EncodeI(instructions.OpImm, rd, 0, rs1, imm)
}

var ecall = instructions.EncodeI(instructions.System, 0, 0, 0, instructions.ECALL)

// program that exits with the given test number and exit code
func exitProgram(testnum, code int32) []byte {
	return elftest.Words(
		addi(registers.A7, 0, riscvtests.ExitSyscall),
		addi(registers.GP, 0, testnum),
		addi(registers.A0, 0, code),
		ecall,
	)
}

func writeProgram(t *testing.T, dir, name string, program []byte) {
	t.Helper()
	data := elftest.Build(elftest.RISCV, 0x1000, elftest.Segment{Addr: 0x1000, Data: program, Executable: true})
	elftest.WriteData(t, dir, name, data)
}

func TestClassify(t *testing.T) {
	var reg registers.File

	test.ExpectEquality(t, riscvtests.Classify(&reg).Verdict, riscvtests.Unknown)

	reg.Write(registers.A7, 93)
	reg.Write(registers.GP, 1)
	reg.Write(registers.A0, 0)
	o := riscvtests.Classify(&reg)
	test.ExpectEquality(t, o.Verdict, riscvtests.Pass)
	test.ExpectEquality(t, o.ExitCode(), 0)

	reg.Write(registers.GP, 5)
	reg.Write(registers.A0, 9)
	o = riscvtests.Classify(&reg)
	test.ExpectEquality(t, o.Verdict, riscvtests.Fail)
	test.ExpectEquality(t, o.Code, uint32(9))
	test.ExpectEquality(t, o.ExitCode(), 1)
	test.ExpectEquality(t, o.String(), "FAIL (code: 0x9)")

	// failure is decided by gp alone
	reg.Write(registers.A0, 0)
	test.ExpectEquality(t, riscvtests.Classify(&reg).Verdict, riscvtests.Fail)

	reg.Write(registers.GP, 1)
	reg.Write(registers.A0, 3)
	o = riscvtests.Classify(&reg)
	test.ExpectEquality(t, o.Verdict, riscvtests.Unknown)
	test.ExpectEquality(t, o.ExitCode(), 2)

	reg.Write(registers.A7, 94)
	reg.Write(registers.A0, 0)
	test.ExpectEquality(t, riscvtests.Classify(&reg).Verdict, riscvtests.Unknown)
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	writeProgram(t, dir, "pass", exitProgram(1, 0))
	writeProgram(t, dir, "fail", exitProgram(3, 7))

	r := riscvtests.RunFile(filepath.Join(dir, "pass"), hardware.Config{}, 100)
	test.ExpectSuccess(t, r.Err)
	test.ExpectSuccess(t, r.Passed())
	test.ExpectEquality(t, r.Count, 4)
	test.ExpectEquality(t, r.Name, "pass")

	r = riscvtests.RunFile(filepath.Join(dir, "fail"), hardware.Config{}, 100)
	test.ExpectSuccess(t, r.Err)
	test.ExpectFailure(t, r.Passed())
	test.ExpectEquality(t, r.Outcome, riscvtests.Outcome{Verdict: riscvtests.Fail, Code: 7})

	r = riscvtests.RunFile(filepath.Join(dir, "missing"), hardware.Config{}, 100)
	test.ExpectFailure(t, r.Err)
	test.ExpectFailure(t, r.Passed())
}

func TestSuite(t *testing.T) {
	dir := t.TempDir()
	writeProgram(t, dir, "rv32ui-p-add", exitProgram(1, 0))
	writeProgram(t, dir, "rv32ui-p-sub", exitProgram(1, 0))
	writeProgram(t, dir, "rv32um-p-div", exitProgram(4, 1))

	// files with an extension and directories are ignored
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "rv32ui-p-add.dump"), []byte("dump"), 0o644))
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	s := riscvtests.NewSuite(dir, hardware.Config{}, 1000)

	names, err := s.Programs()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, ","), "rv32ui-p-add,rv32ui-p-sub,rv32um-p-div")

	test.DemandSuccess(t, s.Run(nil))
	test.ExpectEquality(t, len(s.Results), 3)
	test.ExpectEquality(t, s.NumPassed(), 2)
	test.ExpectFailure(t, s.Passed())

	w := &test.Writer{}
	s.Report(w)
	report := w.String()
	test.ExpectSuccess(t, strings.Contains(report, "PASS rv32ui-p-add\n"))
	test.ExpectSuccess(t, strings.Contains(report, "FAIL rv32um-p-div - FAIL (code: 0x1)\n"))
	test.ExpectSuccess(t, strings.HasSuffix(report, "summary: 2/3 tests passed\n"))
}

func TestSuiteMissingDirectory(t *testing.T) {
	s := riscvtests.NewSuite(filepath.Join(t.TempDir(), "none"), hardware.Config{}, 0)
	test.ExpectFailure(t, s.Run(nil))
}
