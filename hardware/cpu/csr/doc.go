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

// Package csr implements the machine-mode control and status registers of
// the RISC-V CPU.
//
// The CSR file is an open map. A fixed set of architectural registers is
// present from construction but any 12-bit index can be read or written.
// Unknown indexes read as zero and are created on first write.
//
// Each CPU owns its own CSR file.
package csr
