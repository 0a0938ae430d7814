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

package disassembly

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jetsetilly/riscv32/elfloader"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
)

// Segment disassembles every complete word of a segment.
func Segment(seg elfloader.Segment) []Entry {
	entries := make([]Entry, 0, len(seg.Data)/4)
	for i := 0; i+4 <= len(seg.Data); i += 4 {
		w := instructions.Word(binary.LittleEndian.Uint32(seg.Data[i:]))
		entries = append(entries, Decode(seg.Addr+uint32(i), w))
	}
	return entries
}

// Disassemble writes a listing of every executable segment of the ELF file
// to io.Writer.
func Disassemble(output io.Writer, f *elfloader.File) {
	fmt.Fprintf(output, "entry point: %08x\n", f.Entry)
	for _, seg := range f.Segments {
		if !seg.Executable {
			continue
		}
		fmt.Fprintf(output, "\nsegment: %08x (%d bytes)\n", seg.Addr, len(seg.Data))
		for _, e := range Segment(seg) {
			fmt.Fprintln(output, e)
		}
	}
}
