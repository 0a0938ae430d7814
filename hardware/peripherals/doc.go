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

// Package peripherals keeps the table of memory mapped devices attached to
// the machine. Devices implement the bus.Peripheral interface and are added
// once when the machine is created.
//
// An address belongs to a device if it falls in the range
// [BaseAddress(), BaseAddress()+Size()). Device ranges should not overlap. If
// they do, the device added first takes precedence.
//
// Concrete devices are in the sub-packages.
package peripherals
