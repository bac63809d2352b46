// This file is part of gbaic.
//
// gbaic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbaic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbaic.  If not, see <https://www.gnu.org/licenses/>.

package flatten

import (
	"debug/elf"
	"fmt"
	"math/bits"

	"github.com/tom42/gbaic/curated"
)

// Segment is a single entry in the program header table.
type Segment struct {
	Type     elf.ProgType
	Offset   uint64
	VirtAddr uint64
	PhysAddr uint64
	FileSize uint64
	MemSize  uint64
	Align    uint64
	Flags    elf.ProgFlag
}

func newSegment(p *elf.Prog) Segment {
	return Segment{
		Type:     p.Type,
		Offset:   p.Off,
		VirtAddr: p.Vaddr,
		PhysAddr: p.Paddr,
		FileSize: p.Filesz,
		MemSize:  p.Memsz,
		Align:    p.Align,
		Flags:    p.Flags,
	}
}

// IsLoad returns true if the segment is loadable.
func (s Segment) IsLoad() bool {
	return s.Type == elf.PT_LOAD
}

// End returns the address after the last byte of the segment in memory. The
// boolean is false if the end can not be represented.
func (s Segment) End() (uint64, bool) {
	end, carry := bits.Add64(s.VirtAddr, s.MemSize, 0)
	return end, carry == 0
}

// Validate checks the rules that every loadable segment must follow by
// itself. The index is used in error messages.
func (s Segment) Validate(index int) error {
	if s.VirtAddr != s.PhysAddr {
		return curated.Errorf(SegmentAddress, index, s.VirtAddr, s.PhysAddr)
	}
	if s.FileSize > s.MemSize {
		return curated.Errorf(SegmentSize, index, s.FileSize, s.MemSize)
	}
	if s.Align > 1 {
		if bits.OnesCount64(s.Align) != 1 {
			return curated.Errorf(SegmentAlignment, index, s.Align)
		}
		if s.Offset&(s.Align-1) != s.VirtAddr&(s.Align-1) {
			return curated.Errorf(SegmentCongruence, index, s.Offset, s.VirtAddr, s.Align)
		}
	}
	if end, ok := s.End(); !ok || end > maxAddress {
		return curated.Errorf(SegmentOverflow, index)
	}
	return nil
}

// TypeName returns the short name of the segment type.
func (s Segment) TypeName() string {
	switch s.Type {
	case elf.PT_NULL:
		return "NULL"
	case elf.PT_LOAD:
		return "LOAD"
	case elf.PT_DYNAMIC:
		return "DYNAMIC"
	case elf.PT_INTERP:
		return "INTERP"
	case elf.PT_NOTE:
		return "NOTE"
	case elf.PT_SHLIB:
		return "SHLIB"
	case elf.PT_PHDR:
		return "PHDR"
	case elf.PT_TLS:
		return "TLS"
	case elf.PT_LOOS:
		return "LOOS"
	case elf.PT_HIOS:
		return "HIOS"
	case elf.PT_LOPROC:
		return "LOPROC"
	case elf.PT_HIPROC:
		return "HIPROC"
	}
	return fmt.Sprintf("0x%08x", uint32(s.Type))
}

var flagNames = [...]string{"", "X", "W", "WX", "R", "RX", "RW", "RWX"}

// FlagString returns the segment flags in RWX form.
func (s Segment) FlagString() string {
	if s.Flags < elf.ProgFlag(len(flagNames)) {
		return flagNames[s.Flags]
	}
	return fmt.Sprintf("%#x", uint32(s.Flags))
}

// Image is a flattened executable.
type Image struct {
	// the entry point taken from the ELF header
	Entry uint64

	// the address of the first byte of data. zero if no segment has any
	// bytes in the file
	LoadAddress uint64

	Data []byte

	// the program header table, in file order
	Segments []Segment
}
