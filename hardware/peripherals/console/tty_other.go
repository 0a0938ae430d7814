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

//go:build !unix

package console

import "errors"

// TTY is not supported on this platform.
type TTY struct{}

// OpenTTY always fails on this platform.
func OpenTTY() (*TTY, error) {
	return nil, errors.New("console: terminal input not supported on this platform")
}

// Available implements the Input interface.
func (tty *TTY) Available() (int, error) {
	return 0, nil
}

// Read implements the Input interface.
func (tty *TTY) Read(p []byte) (int, error) {
	return 0, nil
}

// Close does nothing on this platform.
func (tty *TTY) Close() error {
	return nil
}
