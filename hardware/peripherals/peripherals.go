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

package peripherals

import (
	"github.com/jetsetilly/riscv32/hardware/memory/bus"
)

// Manager is the registration table of peripherals.
type Manager struct {
	devices []bus.Peripheral
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager() *Manager {
	return &Manager{}
}

// Add a device to the table.
func (mgr *Manager) Add(dev bus.Peripheral) {
	mgr.devices = append(mgr.devices, dev)
}

// Devices returns the registered devices in the order they were added.
func (mgr *Manager) Devices() []bus.Peripheral {
	return mgr.devices
}

// contains is true if address is in the range of the peripheral
func contains(dev bus.Peripheral, addr uint32) bool {
	base := dev.BaseAddress()
	return addr >= base && addr-base < dev.Size()
}

// Find returns the device that owns the address and the address rebased to
// the device's range.
func (mgr *Manager) Find(addr uint32) (bus.Peripheral, uint32, bool) {
	for _, dev := range mgr.devices {
		if contains(dev, addr) {
			return dev, addr - dev.BaseAddress(), true
		}
	}
	return nil, 0, false
}

// IsPeripheralAddress returns true if any device owns the address.
func (mgr *Manager) IsPeripheralAddress(addr uint32) bool {
	_, _, ok := mgr.Find(addr)
	return ok
}

// Read a word from the device that owns the address. An address with no
// owner reads as zero.
func (mgr *Manager) Read(addr uint32) (uint32, error) {
	dev, offset, ok := mgr.Find(addr)
	if !ok {
		return 0, nil
	}
	return dev.Read(offset)
}

// Write a word to the device that owns the address. A write to an address
// with no owner is ignored.
func (mgr *Manager) Write(addr uint32, data uint32) error {
	dev, offset, ok := mgr.Find(addr)
	if !ok {
		return nil
	}
	return dev.Write(offset, data)
}
