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

// Package faults defines the error patterns used throughout the simulator and
// a log of faults encountered during execution.
//
// Errors are created with the curated package and the patterns in this
// package. Checking for a class of error is done with curated.Is() or
// curated.Has():
//
//	if curated.Is(err, faults.UnsupportedInstruction) {
//		...
//	}
//
// Environment calls (ECALL) are not errors. They are signalled through the
// result package as a distinct outcome of a CPU step.
package faults
