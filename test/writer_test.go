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

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/riscv32/test"
)

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectSuccess(t, tw.Compare(""))

	fmt.Fprintf(tw, "x%d: %08x", 1, 42)
	test.ExpectSuccess(t, tw.Compare("x1: 0000002a"))
	test.ExpectEquality(t, tw.String(), "x1: 0000002a")

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestExpectations(t *testing.T) {
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectSuccess(t, true)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, fmt.Errorf("failure"))
	test.ExpectEquality(t, uint32(0xffffffff), ^uint32(0))
	test.ExpectInequality(t, 1, 2)
}
