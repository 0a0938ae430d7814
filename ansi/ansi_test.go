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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/riscv32/ansi"
	"github.com/jetsetilly/riscv32/test"
)

func TestPen(t *testing.T) {
	test.ExpectEquality(t, ansi.Pen(ansi.Red, false), "\033[31m")
	test.ExpectEquality(t, ansi.Pen(ansi.Green, true), "\033[92m")
	test.ExpectEquality(t, ansi.Paint("PASS", ansi.Green), "\033[92mPASS\033[0m")
}
