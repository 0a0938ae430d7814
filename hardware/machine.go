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
	"io"
	"strings"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/faults"
	"github.com/jetsetilly/riscv32/hardware/cpu"
	"github.com/jetsetilly/riscv32/hardware/cpu/result"
	"github.com/jetsetilly/riscv32/hardware/memory"
	"github.com/jetsetilly/riscv32/hardware/memory/bus"
	"github.com/jetsetilly/riscv32/hardware/memory/cpubus"
	"github.com/jetsetilly/riscv32/hardware/peripherals"
	"github.com/jetsetilly/riscv32/hardware/peripherals/console"
	"github.com/jetsetilly/riscv32/hardware/peripherals/rng"
	"github.com/jetsetilly/riscv32/logger"
)

// MemoryType selects the implementation of main memory.
type MemoryType string

// List of valid MemoryType values.
const (
	SparseMemory MemoryType = "sparse"
	DenseMemory  MemoryType = "dense"
)

// Verbosity levels at which different types of log entry are produced.
const (
	VerbositySummary = 1
	VerbosityFaults  = 2
	VerbosityTrace   = 3
)

// Config is used to specify the machine created by NewMachine(). The zero
// value is a valid configuration: sparse memory, a console with no output or
// input and an RNG device.
type Config struct {
	Memory MemoryType

	// size of dense memory. zero for the default size
	DenseSize int

	// console output and input. either can be nil
	ConsoleOutput io.Writer
	ConsoleInput  console.Input

	// initial seed of the RNG device
	RNGSeed uint32

	// verbosity of logging. see the Verbosity constants
	Verbosity int
}

// Machine is the main container for the emulated components.
type Machine struct {
	CPU         *cpu.CPU
	Mem         bus.Memory
	Bus         *cpubus.Dispatcher
	Peripherals *peripherals.Manager

	// every fault encountered by Run()
	Faults *faults.Log

	// the reason the most recent call to Run() ended
	Ending Ending

	// Trace is called with the result of every instruction executed by
	// Run(). can be nil
	Trace func(result.Result)

	verbosity int

	// permissions for log entries at different verbosity levels
	summaryPerm logger.Permission
	faultPerm   logger.Permission
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(cfg Config) (*Machine, error) {
	m := &Machine{
		Peripherals: peripherals.NewManager(),
		Faults:      faults.NewLog(),
		verbosity:   cfg.Verbosity,
	}

	m.summaryPerm = logger.Verbosity{Current: &m.verbosity, Required: VerbositySummary}
	m.faultPerm = logger.Verbosity{Current: &m.verbosity, Required: VerbosityFaults}

	switch cfg.Memory {
	case SparseMemory, "":
		m.Mem = memory.NewSparse(m.faultPerm)
	case DenseMemory:
		m.Mem = memory.NewDense(cfg.DenseSize)
	default:
		return nil, curated.Errorf("machine: unknown memory type (%s)", cfg.Memory)
	}

	m.Peripherals.Add(console.NewConsole(console.DefaultBase, cfg.ConsoleOutput, cfg.ConsoleInput, m.faultPerm))
	m.Peripherals.Add(rng.NewRNG(rng.DefaultBase, cfg.RNGSeed, m.faultPerm))

	m.Bus = cpubus.NewDispatcher(m.Mem, m.Peripherals)
	m.CPU = cpu.NewCPU(m.Bus)

	return m, nil
}

// SetVerbosity changes the verbosity level of logging.
func (m *Machine) SetVerbosity(verbosity int) {
	m.verbosity = verbosity
}

// Verbosity returns the current verbosity level.
func (m *Machine) Verbosity() int {
	return m.verbosity
}

// LoadSegment writes data to main memory. It is used by program loaders and
// bypasses the peripherals.
func (m *Machine) LoadSegment(addr uint32, data []byte) error {
	return m.Mem.LoadSegment(addr, data)
}

// Report writes the PC and all registers to io.Writer.
func (m *Machine) Report(w io.Writer) {
	fmt.Fprintf(w, "Final PC: 0x%08x\n", m.CPU.PC)
	fmt.Fprintln(w, "Registers:")
	io.WriteString(w, m.CPU.Reg.String())
}

func (m *Machine) String() string {
	s := strings.Builder{}
	m.Report(&s)
	return s.String()
}
