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

package logger

// Permission implementations indicate whether the environment making a
// logging request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed regardless of
// any other considerations.
var Allow Permission = allow{}

// Verbosity is a Permission that allows logging when the Current level is at
// least the Required level. The Current field is a pointer so that the level
// can be changed after the permission has been handed out.
type Verbosity struct {
	Current  *int
	Required int
}

func (v Verbosity) AllowLogging() bool {
	return v.Current != nil && *v.Current >= v.Required
}
