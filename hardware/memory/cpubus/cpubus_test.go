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

package cpubus_test

import (
	"testing"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/faults"
	"github.com/jetsetilly/riscv32/hardware/memory"
	"github.com/jetsetilly/riscv32/hardware/memory/bus"
	"github.com/jetsetilly/riscv32/hardware/memory/cpubus"
	"github.com/jetsetilly/riscv32/hardware/peripherals"
	"github.com/jetsetilly/riscv32/hardware/peripherals/console"
	"github.com/jetsetilly/riscv32/test"
)

var _ bus.CPUBus = (*cpubus.Dispatcher)(nil)

func newDispatcher(w *test.Writer) *cpubus.Dispatcher {
	mgr := peripherals.NewManager()
	mgr.Add(console.NewConsole(console.DefaultBase, w, nil, nil))
	return cpubus.NewDispatcher(memory.NewSparse(nil), mgr)
}

func TestMainMemory(t *testing.T) {
	d := newDispatcher(&test.Writer{})

	test.ExpectFailure(t, d.IsPeripheralAddress(1000))
	test.ExpectSuccess(t, d.Write32(1000, 1764))
	v, err := d.Read32(1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(1764))

	test.ExpectSuccess(t, d.Write8(2000, 0xef))
	b, err := d.Read8(2000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0xef))

	test.ExpectSuccess(t, d.Write16(3000, 0xbeef))
	h, err := d.Read16(3000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, uint16(0xbeef))
}

func TestPeripheralWord(t *testing.T) {
	w := &test.Writer{}
	d := newDispatcher(w)

	test.ExpectSuccess(t, d.IsPeripheralAddress(console.DefaultBase))
	test.ExpectSuccess(t, d.Write32(console.DefaultBase+console.Data, 'A'))
	test.ExpectEquality(t, w.String(), "A")

	v, err := d.Read32(console.DefaultBase + console.Status)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(console.StatusTXReady))

	// the write did not reach main memory
	sparse := d.Memory().(*memory.Sparse)
	test.ExpectFailure(t, sparse.Written(console.DefaultBase))
}

func TestPeripheralSubword(t *testing.T) {
	d := newDispatcher(&test.Writer{})

	_, err := d.Read8(console.DefaultBase)
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))
	err = d.Write8(console.DefaultBase, 'A')
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))
	_, err = d.Read16(console.DefaultBase)
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))
	err = d.Write16(console.DefaultBase, 'A')
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))
}

func TestNoPeripherals(t *testing.T) {
	d := cpubus.NewDispatcher(memory.NewSparse(nil), nil)
	test.ExpectFailure(t, d.IsPeripheralAddress(console.DefaultBase))
	test.ExpectSuccess(t, d.Write8(console.DefaultBase, 1))
}

func TestStraddlingPeripheral(t *testing.T) {
	w := &test.Writer{}
	d := newDispatcher(w)
	sparse := d.Memory().(*memory.Sparse)

	err := d.Write32(console.DefaultBase-2, 0x41414141)
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))
	test.ExpectEquality(t, w.String(), "")
	test.ExpectFailure(t, sparse.Written(console.DefaultBase))
	test.ExpectFailure(t, sparse.Written(console.DefaultBase-2))

	_, err = d.Read32(console.DefaultBase - 1)
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))

	err = d.Write16(console.DefaultBase-1, 0x4141)
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))

	_, err = d.Read16(console.DefaultBase - 1)
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedInstruction))

	// ending immediately before the peripheral is fine
	test.ExpectSuccess(t, d.Write32(console.DefaultBase-4, 0x41414141))
	test.ExpectSuccess(t, d.Write16(console.DefaultBase-2, 0x4141))
}
