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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/faults"
	"github.com/jetsetilly/riscv32/hardware/cpu/result"
	"github.com/jetsetilly/riscv32/logger"
)

// Reason says why Run() stopped.
type Reason int

// List of valid Reason values.
const (
	// Run() has not been called or is running
	NotEnded Reason = iota

	// the instruction limit was reached
	LimitReached

	// an unsupported instruction was encountered
	Unsupported

	// the program made an environment call
	Ecall

	// an instruction faulted for a reason other than being unsupported. the
	// error was returned by Run()
	Fault
)

func (r Reason) String() string {
	switch r {
	case NotEnded:
		return "not ended"
	case LimitReached:
		return "instruction limit reached"
	case Unsupported:
		return "unsupported instruction"
	case Ecall:
		return "environment call"
	case Fault:
		return "fault"
	}
	return "unknown"
}

// Ending records why and where Run() stopped.
type Ending struct {
	Reason Reason

	// the result of the final instruction. not valid when Reason is
	// LimitReached
	Result result.Result
}

func (e Ending) String() string {
	switch e.Reason {
	case Unsupported, Fault:
		return fmt.Sprintf("%s: %v (PC: %08x)", e.Reason, e.Result.Err, e.Result.Address)
	case Ecall:
		return fmt.Sprintf("%s (PC: %08x)", e.Reason, e.Result.Address)
	}
	return e.Reason.String()
}

// Run executes instructions until the limit is reached, an environment call
// is made, or an instruction faults. A limit of zero or less means there is
// no limit.
//
// Returns the number of instructions executed. An environment call counts as
// an executed instruction. A faulting instruction does not.
//
// An unsupported instruction stops the run and is logged but is not returned
// as an error. Other faults are returned as an error.
func (m *Machine) Run(limit int) (int, error) {
	m.Ending = Ending{}

	var count int

	for limit <= 0 || count < limit {
		r := m.CPU.Step()

		if m.Trace != nil {
			m.Trace(r)
		}

		switch r.Category {
		case result.Continue:
			count++

		case result.Terminate:
			count++
			m.Ending = Ending{Reason: Ecall, Result: r}
			logger.Logf(m.summaryPerm, "machine", "%s after %d instructions", m.Ending, count)
			return count, nil

		case result.Fault:
			m.Faults.NewEntry(r.Err, r.Address)

			if curated.Has(r.Err, faults.UnsupportedInstruction) {
				m.Ending = Ending{Reason: Unsupported, Result: r}
				logger.Log(logger.Allow, "machine", m.Ending)
				logger.Logf(m.summaryPerm, "machine", "stopped after %d instructions", count)
				return count, nil
			}

			m.Ending = Ending{Reason: Fault, Result: r}
			logger.Log(m.faultPerm, "machine", m.Ending)
			return count, r.Err
		}
	}

	m.Ending = Ending{Reason: LimitReached}
	logger.Logf(m.summaryPerm, "machine", "%s after %d instructions", m.Ending, count)

	return count, nil
}
