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

//go:build unix

package console

import (
	"errors"
	"os"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// TTY is an implementation of the Input interface that reads from the
// controlling terminal. The terminal is put into cbreak mode so that input is
// available a byte at a time and without waiting for the return key.
type TTY struct {
	t *term.Term
}

// OpenTTY opens the controlling terminal. Fails if standard input is not a
// terminal.
func OpenTTY() (*TTY, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("console: stdin is not a terminal")
	}

	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, err
	}

	return &TTY{t: t}, nil
}

// Available implements the Input interface.
func (tty *TTY) Available() (int, error) {
	return tty.t.Available()
}

// Read implements the Input interface.
func (tty *TTY) Read(p []byte) (int, error) {
	return tty.t.Read(p)
}

// Close restores the terminal to its original mode.
func (tty *TTY) Close() error {
	if err := tty.t.Restore(); err != nil {
		return err
	}
	return tty.t.Close()
}
