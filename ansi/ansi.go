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

// Package ansi contains the escape sequences used to colour terminal output.
package ansi

import (
	"fmt"
)

// Colour is one of the eight standard terminal colours.
type Colour int

// List of valid Colour values.
const (
	Black Colour = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Normal resets the pen to the terminal's default.
const Normal = "\033[0m"

// ClearLine clears the current line and returns the cursor to the start of
// the line.
const ClearLine = "\033[2K\r"

// Pen returns the escape sequence that sets the pen colour. Bright pens use
// the high-intensity variant of the colour.
func Pen(c Colour, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[9%dm", c)
	}
	return fmt.Sprintf("\033[3%dm", c)
}

// Paint wraps the string in the escape sequences for the pen colour. The pen
// is reset to normal afterwards.
func Paint(s string, c Colour) string {
	return fmt.Sprintf("%s%s%s", Pen(c, true), s, Normal)
}
