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

package elfloader

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/faults"
)

// SegmentLoader is implemented by anything that can accept a program
// segment.
type SegmentLoader interface {
	LoadSegment(addr uint32, data []byte) error
}

// Segment is a single loadable segment of an ELF file.
type Segment struct {
	// load address
	Addr uint32

	// segment data. the length is the size of the segment in memory, which
	// may be larger than the size in the file
	Data []byte

	// the segment contains instructions
	Executable bool
}

// File is a parsed ELF file.
type File struct {
	Entry    uint32
	Segments []Segment
}

// Open parses the ELF file at path.
func Open(path string) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(faults.FileNotFound, path)
		}
		return nil, curated.Errorf(faults.InvalidElfFormat, err)
	}

	ef, err := elf.Open(path)
	if err != nil {
		return nil, curated.Errorf(faults.InvalidElfFormat, err)
	}
	defer ef.Close()

	return parse(ef)
}

// Parse an ELF file from an io.ReaderAt.
func Parse(r io.ReaderAt) (*File, error) {
	ef, err := elf.NewFile(r)
	if err != nil {
		return nil, curated.Errorf(faults.InvalidElfFormat, err)
	}
	return parse(ef)
}

// MaxSegmentSize is the largest memory size of a loadable segment.
const MaxSegmentSize = 1 << 28

func parse(ef *elf.File) (*File, error) {
	// sanity checks on ELF data
	if ef.Class != elf.ELFCLASS32 {
		return nil, curated.Errorf(faults.InvalidElfFormat, "not 32-bit")
	}
	if ef.ByteOrder != binary.LittleEndian {
		return nil, curated.Errorf(faults.InvalidElfFormat, "not little-endian")
	}
	if ef.Machine != elf.EM_RISCV {
		return nil, curated.Errorf(faults.InvalidElfFormat, fmt.Sprintf("not RISC-V (%s)", ef.Machine))
	}

	f := &File{
		Entry: uint32(ef.Entry),
	}

	for _, p := range ef.Progs {
		if p.Type != elf.PT_LOAD || p.Memsz == 0 {
			continue
		}

		if p.Memsz > MaxSegmentSize {
			return nil, curated.Errorf(faults.InvalidElfFormat, fmt.Sprintf("segment memory size too large (%d bytes)", p.Memsz))
		}

		if p.Filesz > p.Memsz {
			return nil, curated.Errorf(faults.InvalidElfFormat, "segment file size larger than memory size")
		}

		data := make([]byte, p.Memsz)
		if _, err := io.ReadFull(p.Open(), data[:p.Filesz]); err != nil {
			return nil, curated.Errorf(faults.InvalidElfFormat, err)
		}

		f.Segments = append(f.Segments, Segment{
			Addr:       uint32(p.Vaddr),
			Data:       data,
			Executable: p.Flags&elf.PF_X == elf.PF_X,
		})
	}

	return f, nil
}

// Load every segment with the SegmentLoader.
func (f *File) Load(loader SegmentLoader) error {
	for _, s := range f.Segments {
		if err := loader.LoadSegment(s.Addr, s.Data); err != nil {
			if curated.Has(err, faults.MemoryAccess) {
				return err
			}
			return curated.Errorf(faults.MemoryAccess, err)
		}
	}
	return nil
}

// Load the ELF file at path with the SegmentLoader and return the entry
// point.
func Load(path string, loader SegmentLoader) (uint32, error) {
	f, err := Open(path)
	if err != nil {
		return 0, err
	}
	if err := f.Load(loader); err != nil {
		return 0, err
	}
	return f.Entry, nil
}
