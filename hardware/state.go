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
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/riscv32/hardware/cpu/registers"
)

// State is a copy of the architectural state of the CPU.
type State struct {
	PC        uint32
	Registers [registers.NumRegisters]uint32
	CSRs      map[string]uint32
	Ending    string
}

// State returns a copy of the current architectural state of the CPU.
func (m *Machine) State() State {
	return State{
		PC:        m.CPU.PC,
		Registers: m.CPU.Reg.Snapshot(),
		CSRs:      m.CPU.CSR.Snapshot(),
		Ending:    m.Ending.String(),
	}
}

// WriteGraph writes a graphviz representation of the current state to
// io.Writer. The output can be rendered with the dot tool.
func (m *Machine) WriteGraph(w io.Writer) {
	s := m.State()
	memviz.Map(w, &s)
}
