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

package riscvtests

import (
	"fmt"

	"github.com/jetsetilly/riscv32/hardware/cpu/registers"
)

// ExitSyscall is the value of a7 when a test program exits.
const ExitSyscall = 93

// Verdict is the overall outcome of a test program.
type Verdict int

// List of valid Verdict values.
const (
	Unknown Verdict = iota
	Pass
	Fail
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	}
	return "UNKNOWN"
}

// Outcome is the result of classifying the registers at the end of a test
// program.
type Outcome struct {
	Verdict Verdict

	// value of a0 for a Fail verdict
	Code uint32
}

func (o Outcome) String() string {
	if o.Verdict == Fail {
		return fmt.Sprintf("%s (code: 0x%x)", o.Verdict, o.Code)
	}
	return o.Verdict.String()
}

// ExitCode returns the process exit code for the outcome: zero for a pass,
// one for a failure and two for an unknown outcome.
func (o Outcome) ExitCode() int {
	switch o.Verdict {
	case Pass:
		return 0
	case Fail:
		return 1
	}
	return 2
}

// Classify the outcome of a test program from the state of the registers.
func Classify(reg *registers.File) Outcome {
	if reg.Read(registers.A7) != ExitSyscall {
		return Outcome{}
	}

	testnum := reg.Read(registers.GP)
	code := reg.Read(registers.A0)

	if testnum != 1 {
		return Outcome{Verdict: Fail, Code: code}
	}

	// gp of one with a non-zero exit code is not a pattern the framework
	// produces
	if code != 0 {
		return Outcome{}
	}

	return Outcome{Verdict: Pass}
}
