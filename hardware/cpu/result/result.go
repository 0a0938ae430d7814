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

package result

import "fmt"

// Category of a step result.
type Category int

// List of valid Category values.
const (
	// the instruction executed and the PC has advanced
	Continue Category = iota

	// the instruction could not be executed. the Err field says why and the
	// architectural state is unchanged
	Fault

	// the instruction was an environment call. the program has asked to
	// stop
	Terminate
)

func (c Category) String() string {
	switch c {
	case Continue:
		return "continue"
	case Fault:
		return "fault"
	case Terminate:
		return "terminate"
	}
	return "unknown"
}

// Result of a single CPU step.
type Result struct {
	Category Category

	// address of the instruction that was executed (or was attempted)
	Address uint32

	// the instruction word. zero if the fetch failed
	Word uint32

	// only valid when Category is Fault
	Err error
}

// Faulted is a convenience function that returns a Result of category Fault.
func Faulted(address uint32, word uint32, err error) Result {
	return Result{
		Category: Fault,
		Address:  address,
		Word:     word,
		Err:      err,
	}
}

func (r Result) String() string {
	if r.Category == Fault {
		return fmt.Sprintf("%08x: %08x: %s: %v", r.Address, r.Word, r.Category, r.Err)
	}
	return fmt.Sprintf("%08x: %08x: %s", r.Address, r.Word, r.Category)
}
