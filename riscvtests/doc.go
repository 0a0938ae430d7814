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

// Package riscvtests supports the running of programs built with the
// riscv-tests framework. The framework ends each test program with an
// environment call. The outcome of the test is left in the registers at that
// point:
//
//	a7 holds 93, the exit system call
//	gp holds the number of the test that failed, or one if every test passed
//	a0 holds zero for a pass
//
// Classify() interprets the registers. The Suite type runs every test program
// in a directory and summarises the results.
package riscvtests
