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

package faults

import (
	"fmt"
	"io"

	"github.com/jetsetilly/riscv32/curated"
)

// Category classifies the approximate reason for a fault.
type Category string

// List of valid Category values.
const (
	Unsupported   Category = "unsupported instruction"
	MemoryFault   Category = "memory access"
	Uncategorised Category = "uncategorised"
)

// CategoryOf returns the Category for an error created with one of the
// patterns in this package.
func CategoryOf(err error) Category {
	switch {
	case curated.Has(err, UnsupportedInstruction):
		return Unsupported
	case curated.Has(err, MemoryAccess):
		return MemoryFault
	}
	return Uncategorised
}

// Entry is a single entry in the fault log.
type Entry struct {
	Category Category

	// description of the event that triggered the fault. this is the full
	// error message and so includes the category text
	Event string

	// address of the instruction that caused the fault
	InstructionAddr uint32

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (PC: %08x)", e.Event, e.InstructionAddr)
}

// Log records faults raised by the CPU. Faults with the same instruction
// address and event are recorded once and counted.
type Log struct {
	// entries are keyed by the instruction address and the event
	entries map[string]*Entry

	// all the faults in order of the first time they appear
	Entries []*Entry
}

// NewLog is the preferred method of initialisation for the Log type.
func NewLog() *Log {
	return &Log{
		entries: make(map[string]*Entry),
	}
}

// Clear all entries from the log.
func (l *Log) Clear() {
	clear(l.entries)
	l.Entries = l.Entries[:0]
}

// WriteLog writes the list of faults in the order they were added.
func (l *Log) WriteLog(w io.Writer) {
	for _, e := range l.Entries {
		if e.Count > 1 {
			fmt.Fprintf(w, "%s (x%d)\n", e, e.Count)
		} else {
			fmt.Fprintln(w, e)
		}
	}
}

// NewEntry adds an error to the log. The category of the entry is decided by
// the pattern the error was created with.
func (l *Log) NewEntry(err error, instructionAddr uint32) *Entry {
	event := err.Error()
	key := fmt.Sprintf("%08x%s", instructionAddr, event)

	e, found := l.entries[key]
	if !found {
		e = &Entry{
			Category:        CategoryOf(err),
			Event:           event,
			InstructionAddr: instructionAddr,
		}
		l.entries[key] = e
		l.Entries = append(l.Entries, e)
	}

	e.Count++

	return e
}
