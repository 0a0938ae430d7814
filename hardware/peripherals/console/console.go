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

package console

import (
	"bytes"
	"io"

	"github.com/jetsetilly/riscv32/logger"
)

// Default address and size of the console device.
const (
	DefaultBase = 0x10000000
	Size        = 0x1000
)

// Register offsets.
const (
	Data   = 0x0
	Status = 0x4
)

// Status register bits.
const (
	StatusRXReady = 0b01
	StatusTXReady = 0b10
)

// Input is a source of console input.
type Input interface {
	// Available returns the number of bytes that can be read without blocking
	Available() (int, error)
	Read(p []byte) (int, error)
}

// Console implements the bus.Peripheral interface.
type Console struct {
	base   uint32
	output io.Writer
	input  Input

	// permission for logging of input errors
	perm logger.Permission
}

// NewConsole is the preferred method of initialisation for the Console type.
// The input argument can be nil.
func NewConsole(base uint32, output io.Writer, input Input, perm logger.Permission) *Console {
	if perm == nil {
		perm = logger.Allow
	}
	return &Console{
		base:   base,
		output: output,
		input:  input,
		perm:   perm,
	}
}

// BaseAddress implements the bus.Peripheral interface.
func (con *Console) BaseAddress() uint32 {
	return con.base
}

// Size implements the bus.Peripheral interface.
func (con *Console) Size() uint32 {
	return Size
}

// available returns true if input is waiting
func (con *Console) available() bool {
	if con.input == nil {
		return false
	}
	n, err := con.input.Available()
	if err != nil {
		logger.Logf(con.perm, "console", "input: %v", err)
		return false
	}
	return n > 0
}

// Read implements the bus.Peripheral interface.
func (con *Console) Read(offset uint32) (uint32, error) {
	switch offset {
	case Data:
		if !con.available() {
			return 0, nil
		}
		var b [1]byte
		n, err := con.input.Read(b[:])
		if err != nil || n == 0 {
			if err != nil {
				logger.Logf(con.perm, "console", "input: %v", err)
			}
			return 0, nil
		}
		return uint32(b[0]), nil
	case Status:
		status := uint32(StatusTXReady)
		if con.available() {
			status |= StatusRXReady
		}
		return status, nil
	}
	return 0, nil
}

// Write implements the bus.Peripheral interface.
func (con *Console) Write(offset uint32, data uint32) error {
	switch offset {
	case Data:
		if con.output != nil {
			_, err := con.output.Write([]byte{uint8(data)})
			if err != nil {
				logger.Logf(con.perm, "console", "output: %v", err)
			}
		}
	default:
		logger.Logf(con.perm, "console", "ignoring write to offset %03x (value of %08x)", offset, data)
	}
	return nil
}

// BufferedInput is an implementation of the Input interface that supplies
// bytes from memory.
type BufferedInput struct {
	buf bytes.Buffer
}

// NewBufferedInput creates a BufferedInput containing the string.
func NewBufferedInput(s string) *BufferedInput {
	in := &BufferedInput{}
	in.buf.WriteString(s)
	return in
}

// Push more input to the end of the buffer.
func (in *BufferedInput) Push(s string) {
	in.buf.WriteString(s)
}

// Available implements the Input interface.
func (in *BufferedInput) Available() (int, error) {
	return in.buf.Len(), nil
}

// Read implements the Input interface.
func (in *BufferedInput) Read(p []byte) (int, error) {
	return in.buf.Read(p)
}
