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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// used to identify the error later:
//
//	e := curated.Errorf("memory access: address %08x", addr)
//
//	if curated.Is(e, "memory access: address %08x") {
//		fmt.Println("true")
//	}
//
// Patterns that are checked in more than one place should be stored as a
// const string. The faults package is an example of this.
//
// The Has() function is similar to Is() but checks if the pattern occurs
// anywhere in the error chain. A curated error is part of a chain when it is
// one of the placeholder values of another curated error:
//
//	f := curated.Errorf("cpu: %v", e)
//
//	curated.Is(f, "memory access: address %08x") // false
//	curated.Has(f, "memory access: address %08x") // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if it is 'unexpected'.
//
// The Error() function normalises the chain so that duplicate adjacent parts
// are removed. Parts are separated by the sub-string ": ". For example, a
// curated error with the pattern "cpu: %v" wrapping an error with the message
// "cpu: misaligned fetch" will print as "cpu: misaligned fetch".
//
// Curated errors also implement Unwrap() so that they cooperate with the
// errors.Is() and errors.As() functions of the standard library. The first
// placeholder value that is itself an error is considered to be the wrapped
// error.
package curated
