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

package cpubus

import (
	"fmt"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/faults"
	"github.com/jetsetilly/riscv32/hardware/memory/bus"
	"github.com/jetsetilly/riscv32/hardware/peripherals"
)

// Dispatcher implements the bus.CPUBus interface.
type Dispatcher struct {
	mem    bus.Memory
	periph *peripherals.Manager
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The peripherals argument can be nil, in which case all accesses go to
// main memory.
func NewDispatcher(mem bus.Memory, periph *peripherals.Manager) *Dispatcher {
	if periph == nil {
		periph = peripherals.NewManager()
	}
	return &Dispatcher{
		mem:    mem,
		periph: periph,
	}
}

// Memory returns the main memory the dispatcher routes to.
func (d *Dispatcher) Memory() bus.Memory {
	return d.mem
}

// IsPeripheralAddress returns true if a peripheral owns the address.
func (d *Dispatcher) IsPeripheralAddress(addr uint32) bool {
	return d.periph.IsPeripheralAddress(addr)
}

// subword returns an error for an access to a peripheral that isn't word
// sized
func subword(event string, addr uint32) error {
	return curated.Errorf(faults.UnsupportedInstruction, fmt.Sprintf("%s of peripheral address %08x", event, addr))
}

// straddle returns an error if an access of size bytes starting at a
// non-peripheral address reaches into a peripheral's address range
func (d *Dispatcher) straddle(event string, addr uint32, size uint32) error {
	for i := uint32(1); i < size; i++ {
		if d.periph.IsPeripheralAddress(addr + i) {
			return curated.Errorf(faults.UnsupportedInstruction, fmt.Sprintf("%s at %08x straddles peripheral address %08x", event, addr, addr+i))
		}
	}
	return nil
}

// Read8 implements the bus.CPUBus interface.
func (d *Dispatcher) Read8(addr uint32) (uint8, error) {
	if d.periph.IsPeripheralAddress(addr) {
		return 0, subword("8bit read", addr)
	}
	return d.mem.Read8(addr)
}

// Write8 implements the bus.CPUBus interface.
func (d *Dispatcher) Write8(addr uint32, data uint8) error {
	if d.periph.IsPeripheralAddress(addr) {
		return subword("8bit write", addr)
	}
	return d.mem.Write8(addr, data)
}

// Read16 implements the bus.CPUBus interface.
func (d *Dispatcher) Read16(addr uint32) (uint16, error) {
	if d.periph.IsPeripheralAddress(addr) {
		return 0, subword("16bit read", addr)
	}
	if err := d.straddle("16bit read", addr, 2); err != nil {
		return 0, err
	}
	return d.mem.Read16(addr)
}

// Write16 implements the bus.CPUBus interface.
func (d *Dispatcher) Write16(addr uint32, data uint16) error {
	if d.periph.IsPeripheralAddress(addr) {
		return subword("16bit write", addr)
	}
	if err := d.straddle("16bit write", addr, 2); err != nil {
		return err
	}
	return d.mem.Write16(addr, data)
}

// Read32 implements the bus.CPUBus interface. A peripheral address is
// forwarded to the peripheral with the address rebased to the peripheral's
// range. A misaligned word that starts in main memory and ends in a
// peripheral's range is not supported.
func (d *Dispatcher) Read32(addr uint32) (uint32, error) {
	if d.periph.IsPeripheralAddress(addr) {
		return d.periph.Read(addr)
	}
	if err := d.straddle("32bit read", addr, 4); err != nil {
		return 0, err
	}
	return d.mem.Read32(addr)
}

// Write32 implements the bus.CPUBus interface. A peripheral address is
// forwarded to the peripheral with the address rebased to the peripheral's
// range.
func (d *Dispatcher) Write32(addr uint32, data uint32) error {
	if d.periph.IsPeripheralAddress(addr) {
		return d.periph.Write(addr, data)
	}
	if err := d.straddle("32bit write", addr, 4); err != nil {
		return err
	}
	return d.mem.Write32(addr, data)
}
