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

package elfloader_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/elfloader"
	"github.com/jetsetilly/riscv32/elfloader/elftest"
	"github.com/jetsetilly/riscv32/faults"
	"github.com/jetsetilly/riscv32/hardware/memory"
	"github.com/jetsetilly/riscv32/test"
)

func TestFileNotFound(t *testing.T) {
	_, err := elfloader.Load(filepath.Join(t.TempDir(), "missing.elf"), memory.NewSparse(nil))
	test.ExpectSuccess(t, curated.Is(err, faults.FileNotFound))
}

func TestInvalidFormat(t *testing.T) {
	dir := t.TempDir()

	path := elftest.WriteData(t, dir, "text", []byte("not an elf file"))
	_, err := elfloader.Load(path, memory.NewSparse(nil))
	test.ExpectSuccess(t, curated.Is(err, faults.InvalidElfFormat))

	arm := elftest.RISCV
	arm.Machine = 40
	path = elftest.WriteData(t, dir, "arm", elftest.Build(arm, 0x1000))
	_, err = elfloader.Load(path, memory.NewSparse(nil))
	test.ExpectSuccess(t, curated.Is(err, faults.InvalidElfFormat))

	bigEndian := elftest.RISCV
	bigEndian.Data = 2
	path = elftest.WriteData(t, dir, "bigendian", elftest.Build(bigEndian, 0x1000))
	_, err = elfloader.Load(path, memory.NewSparse(nil))
	test.ExpectSuccess(t, curated.Is(err, faults.InvalidElfFormat))
}

func TestOversizedSegment(t *testing.T) {
	path := elftest.WriteFile(t, "huge", 0x1000,
		elftest.Segment{Addr: 0x1000, Data: []byte{0x13, 0, 0, 0}, Memsz: 0xfffff000},
	)
	_, err := elfloader.Open(path)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, faults.InvalidElfFormat))
}

func TestLoad(t *testing.T) {
	path := elftest.WriteFile(t, "prog", 0x1000,
		elftest.Segment{Addr: 0x1000, Data: []byte{0x13, 0x00, 0x00, 0x00}, Executable: true},
		elftest.Segment{Addr: 0x2000, Data: []byte{1, 2}, Memsz: 8},
	)

	mem := memory.NewSparse(nil)
	entry, err := elfloader.Load(path, mem)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, entry, uint32(0x1000))

	w, _ := mem.Read32(0x1000)
	test.ExpectEquality(t, w, uint32(0x13))

	// bss is zero filled
	h, _ := mem.Read16(0x2000)
	test.ExpectEquality(t, h, uint16(0x0201))
	for addr := uint32(0x2002); addr < 0x2008; addr++ {
		test.ExpectSuccess(t, mem.Written(addr), addr)
		b, _ := mem.Read8(addr)
		test.ExpectEquality(t, b, uint8(0), addr)
	}
	test.ExpectFailure(t, mem.Written(0x2008))
}

func TestSegments(t *testing.T) {
	path := elftest.WriteFile(t, "prog", 0x80000000,
		elftest.Segment{Addr: 0x80000000, Data: make([]byte, 16), Executable: true},
		elftest.Segment{Addr: 0x80001000, Data: []byte{1}},
	)

	f, err := elfloader.Open(path)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(f.Segments), 2)
	test.ExpectSuccess(t, f.Segments[0].Executable)
	test.ExpectFailure(t, f.Segments[1].Executable)
	test.ExpectEquality(t, f.Segments[1].Addr, uint32(0x80001000))
}

func TestMemoryRejectsSegment(t *testing.T) {
	path := elftest.WriteFile(t, "prog", 0x1000,
		elftest.Segment{Addr: 0x1000, Data: []byte{0x13, 0x00, 0x00, 0x00}, Executable: true},
	)

	// dense memory starts at 0x80000000 so the segment cannot be loaded
	_, err := elfloader.Load(path, memory.NewDense(0))
	test.ExpectSuccess(t, curated.Is(err, faults.MemoryAccess))
}
