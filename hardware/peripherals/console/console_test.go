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

package console_test

import (
	"testing"

	"github.com/jetsetilly/riscv32/hardware/memory/bus"
	"github.com/jetsetilly/riscv32/hardware/peripherals/console"
	"github.com/jetsetilly/riscv32/test"
)

var _ bus.Peripheral = (*console.Console)(nil)
var _ console.Input = (*console.BufferedInput)(nil)
var _ console.Input = (*console.TTY)(nil)

func TestRange(t *testing.T) {
	con := console.NewConsole(console.DefaultBase, nil, nil, nil)
	test.ExpectEquality(t, con.BaseAddress(), uint32(0x10000000))
	test.ExpectEquality(t, con.Size(), uint32(0x1000))
}

func TestOutput(t *testing.T) {
	w := &test.Writer{}
	con := console.NewConsole(console.DefaultBase, w, nil, nil)

	test.ExpectSuccess(t, con.Write(console.Data, 'H'))
	test.ExpectSuccess(t, con.Write(console.Data, 'i'))

	// only the low byte is output
	test.ExpectSuccess(t, con.Write(console.Data, 0x1234210a))
	test.ExpectEquality(t, w.String(), "Hi\n")

	// writes to other registers are ignored
	test.ExpectSuccess(t, con.Write(console.Status, 'X'))
	test.ExpectEquality(t, w.String(), "Hi\n")
}

func TestNoInput(t *testing.T) {
	con := console.NewConsole(console.DefaultBase, nil, nil, nil)

	v, err := con.Read(console.Data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))

	v, err = con.Read(console.Status)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(console.StatusTXReady))
}

func TestBufferedInput(t *testing.T) {
	in := console.NewBufferedInput("ok")
	con := console.NewConsole(console.DefaultBase, nil, in, nil)

	v, _ := con.Read(console.Status)
	test.ExpectEquality(t, v, uint32(console.StatusTXReady|console.StatusRXReady))

	v, _ = con.Read(console.Data)
	test.ExpectEquality(t, v, uint32('o'))
	v, _ = con.Read(console.Data)
	test.ExpectEquality(t, v, uint32('k'))

	// input is exhausted
	v, _ = con.Read(console.Status)
	test.ExpectEquality(t, v, uint32(console.StatusTXReady))
	v, _ = con.Read(console.Data)
	test.ExpectEquality(t, v, uint32(0))

	in.Push("!")
	v, _ = con.Read(console.Data)
	test.ExpectEquality(t, v, uint32('!'))
}
