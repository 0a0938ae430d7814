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

// Package modalflag is a wrapper for the flag package in the Go standard
// library.  It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "test", "suite")
//	_, _ = md.Parse()
//
// Once parsed, Mode() returns the selected sub-mode (or the first sub-mode in
// the list if none was specified) and further flags can be added for that
// mode after a call to NewMode(). Sub-mode comparisons are case insensitive.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "instruction limit")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions.
//
// In addition to the flag types of the flag package, modalflag provides a
// counting flag (AddCount) which increases each time it appears on the
// command line, and flags with defaults taken from environment variables
// (AddIntEnv and AddStringEnv).
package modalflag
