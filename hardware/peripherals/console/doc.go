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

// Package console implements a simple UART-like console device.
//
// The device has two word sized registers:
//
//	offset 0: data. a write sends the low byte to the output. a read returns
//	          the next input byte or zero if no input is waiting
//	offset 4: status. bit 0 is set when input is waiting. bit 1 is set when
//	          the device can accept output, which is always
//
// Input is optional. The BufferedInput type supplies input from memory and
// the TTY type supplies input from the controlling terminal.
package console
