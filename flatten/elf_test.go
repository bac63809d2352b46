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

package flatten_test

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

// segment for an ELF file built by buildELF()
type segment struct {
	typ   elf.ProgType
	vaddr uint32
	paddr uint32
	data  []byte
	memsz uint32
	align uint32
	flags elf.ProgFlag

	// the file offset is chosen to satisfy the alignment. setting misalign
	// moves it off by one
	misalign bool

	// claim more file data than is in the file
	truncate bool
}

func load(vaddr uint32, data []byte) segment {
	return segment{
		typ:   elf.PT_LOAD,
		vaddr: vaddr,
		paddr: vaddr,
		data:  data,
		memsz: uint32(len(data)),
		align: 4,
		flags: elf.PF_R | elf.PF_X,
	}
}

func bss(vaddr uint32, memsz uint32) segment {
	return segment{
		typ:   elf.PT_LOAD,
		vaddr: vaddr,
		paddr: vaddr,
		memsz: memsz,
		align: 4,
		flags: elf.PF_R | elf.PF_W,
	}
}

const (
	ehdrSize = 52
	phdrSize = 32
)

// buildELF returns a 32 bit little endian ARM executable with the segments.
// the patch functions can change the ELF header before it is returned
func buildELF(entry uint32, segs []segment, patch ...func(hdr []byte)) []byte {
	le := binary.LittleEndian

	hdr := make([]byte, ehdrSize)
	copy(hdr, elf.ELFMAG)
	hdr[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	hdr[elf.EI_OSABI] = byte(elf.ELFOSABI_NONE)
	le.PutUint16(hdr[16:], uint16(elf.ET_EXEC))
	le.PutUint16(hdr[18:], uint16(elf.EM_ARM))
	le.PutUint32(hdr[20:], uint32(elf.EV_CURRENT))
	le.PutUint32(hdr[24:], entry)
	if len(segs) > 0 {
		le.PutUint32(hdr[28:], ehdrSize)
	}
	le.PutUint32(hdr[36:], 0x05000000)
	le.PutUint16(hdr[40:], ehdrSize)
	le.PutUint16(hdr[42:], phdrSize)
	le.PutUint16(hdr[44:], uint16(len(segs)))
	le.PutUint16(hdr[46:], 40)

	for _, p := range patch {
		p(hdr)
	}

	phdrs := make([]byte, phdrSize*len(segs))
	var body bytes.Buffer
	offset := uint32(ehdrSize + len(phdrs))

	for i, s := range segs {
		if s.align > 1 && s.align&(s.align-1) == 0 {
			for offset%s.align != s.vaddr%s.align {
				body.WriteByte(0xee)
				offset++
			}
		}
		if s.misalign {
			body.WriteByte(0xee)
			offset++
		}

		filesz := uint32(len(s.data))
		if s.truncate {
			filesz += 0x100
		}

		ph := phdrs[i*phdrSize:]
		le.PutUint32(ph[0:], uint32(s.typ))
		le.PutUint32(ph[4:], offset)
		le.PutUint32(ph[8:], s.vaddr)
		le.PutUint32(ph[12:], s.paddr)
		le.PutUint32(ph[16:], filesz)
		le.PutUint32(ph[20:], s.memsz)
		le.PutUint32(ph[24:], uint32(s.flags))
		le.PutUint32(ph[28:], s.align)

		body.Write(s.data)
		offset += uint32(len(s.data))
	}

	out := append(hdr, phdrs...)
	return append(out, body.Bytes()...)
}
