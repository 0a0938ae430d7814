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

// Package hardware is the base package for the RISC-V machine. The Machine
// type is the main container for the emulated components: the CPU, main
// memory and the peripherals, connected together with the cpubus Dispatcher.
//
// The Run() function executes instructions until an instruction limit is
// reached, the program makes an environment call, or an instruction faults.
// An unsupported instruction stops the run but is not returned as an error.
// Any other fault is returned as an error. The reason for the end of the run
// is recorded in the Ending field.
//
// Each Machine owns all of its state. Separate machines share nothing and
// can be run side-by-side.
package hardware
