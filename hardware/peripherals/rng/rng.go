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

// Package rng implements a random number generator device. The device is
// loosely based on the RNG unit found in STM32 ARM packages.
//
// The device has three word sized registers:
//
//	offset 0: data. a read returns a new random number
//	offset 4: control. a write reseeds the generator with the written value.
//	          a read returns the most recent seed
//	offset 8: status. always reads as 1 to indicate that a random number is
//	          ready
package rng

import (
	"math/rand"

	"github.com/jetsetilly/riscv32/logger"
)

// Default address and size of the RNG device.
const (
	DefaultBase = 0x10001000
	Size        = 0x10
)

// Register offsets.
const (
	Data    = 0x0
	Control = 0x4
	Status  = 0x8
)

// RNG implements the bus.Peripheral interface.
type RNG struct {
	base uint32
	rand *rand.Rand

	// the value most recently written to the control register
	seed uint32

	perm logger.Permission
}

// NewRNG is the preferred method of initialisation for the RNG type. The
// generator is seeded with the seed argument.
func NewRNG(base uint32, seed uint32, perm logger.Permission) *RNG {
	if perm == nil {
		perm = logger.Allow
	}
	r := &RNG{
		base: base,
		perm: perm,
	}
	r.Reseed(seed)
	return r
}

// Reseed the random number generator.
func (r *RNG) Reseed(seed uint32) {
	r.seed = seed
	r.rand = rand.New(rand.NewSource(int64(seed)))
}

// BaseAddress implements the bus.Peripheral interface.
func (r *RNG) BaseAddress() uint32 {
	return r.base
}

// Size implements the bus.Peripheral interface.
func (r *RNG) Size() uint32 {
	return Size
}

// Read implements the bus.Peripheral interface.
func (r *RNG) Read(offset uint32) (uint32, error) {
	switch offset {
	case Data:
		return r.rand.Uint32(), nil
	case Control:
		return r.seed, nil
	case Status:
		// we're always ready to return a random number
		return 0b1, nil
	}
	return 0, nil
}

// Write implements the bus.Peripheral interface.
func (r *RNG) Write(offset uint32, data uint32) error {
	switch offset {
	case Control:
		r.Reseed(data)
	case Status:
		logger.Logf(r.perm, "rng", "ignoring write to status register (value of %08x)", data)
	case Data:
		logger.Logf(r.perm, "rng", "ignoring write to data register (value of %08x)", data)
	default:
		logger.Logf(r.perm, "rng", "ignoring write to offset %02x (value of %08x)", offset, data)
	}
	return nil
}
