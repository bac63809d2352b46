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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tom42/gbaic/curated"
	"github.com/tom42/gbaic/logger"
)

// MaxImageSize is the size of the largest flattened image. It is the size of
// the largest GBA cartridge.
const MaxImageSize = 32 * 1024 * 1024

// segments must end within the 32 bit address space
const maxAddress = 1 << 32

// size of the ELF header for 32 bit files
const headerSize = 52

// FlattenFile opens the file and flattens it. Errors are prefixed with the
// path of the file.
func FlattenFile(path string, log *logger.Logger) (*Image, error) {
	log.Logf(logger.Allow, "flatten", "Loading: %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(IOError, err)
	}
	defer f.Close()

	img, err := Flatten(f, log)
	if err != nil {
		return nil, curated.Errorf(FileError, path, err)
	}
	return img, nil
}

// Flatten the ELF file read from r. The log can be nil.
func Flatten(r io.ReaderAt, log *logger.Logger) (*Image, error) {
	if err := checkHeader(r); err != nil {
		return nil, err
	}

	f, err := elf.NewFile(r)
	if err != nil {
		return nil, readError(err)
	}

	img := &Image{
		Entry: f.Entry,
		Data:  []byte{},
	}
	log.Logf(logger.Allow, "flatten", "Entry: %#x", img.Entry)

	for _, p := range f.Progs {
		img.Segments = append(img.Segments, newSegment(p))
	}
	logProgramHeaders(log, img.Segments)

	read := func(index int, s Segment) ([]byte, error) {
		b := make([]byte, s.FileSize)
		if _, err := f.Progs[index].ReadAt(b, 0); err != nil {
			if isTruncation(err) {
				return nil, curated.Errorf(FormatError, curated.Errorf(SegmentTruncated, index))
			}
			return nil, curated.Errorf(IOError, err)
		}
		return b, nil
	}

	var st foldState
	for i, s := range img.Segments {
		st, err = st.next(i, s, read)
		if err != nil {
			return nil, err
		}
	}

	if !st.hasLast {
		log.Log(logger.Allow, "flatten", "file has no loadable segments")
		return img, nil
	}

	img.LoadAddress = st.load
	if st.started {
		img.Data = st.data
	}
	log.Logf(logger.Allow, "flatten", "Load address: %#x", img.LoadAddress)
	log.Logf(logger.Allow, "flatten", "Image size: %d bytes", len(img.Data))

	return img, nil
}

// checkHeader checks the ELF header against the only profile that can be
// flattened. the elf package is more forgiving and is not asked to look at a
// file that fails these checks
func checkHeader(r io.ReaderAt) error {
	var hdr [headerSize]byte
	n, err := r.ReadAt(hdr[:], 0)
	if n < len(hdr) {
		if err == nil || isTruncation(err) {
			return curated.Errorf(FormatError, curated.Errorf(NotELF))
		}
		return curated.Errorf(IOError, err)
	}

	if string(hdr[:len(elf.ELFMAG)]) != elf.ELFMAG {
		return curated.Errorf(FormatError, curated.Errorf(NotELF))
	}

	class := elf.Class(hdr[elf.EI_CLASS])
	data := elf.Data(hdr[elf.EI_DATA])
	typ := elf.Type(binary.LittleEndian.Uint16(hdr[16:]))
	machine := elf.Machine(binary.LittleEndian.Uint16(hdr[18:]))
	if class != elf.ELFCLASS32 || data != elf.ELFDATA2LSB || typ != elf.ET_EXEC || machine != elf.EM_ARM {
		return curated.Errorf(FormatError, curated.Errorf(WrongProfile))
	}

	if v := int(hdr[elf.EI_VERSION]); v != int(elf.EV_CURRENT) {
		return curated.Errorf(FormatError, curated.Errorf(FormatVersion, v, int(elf.EV_CURRENT)))
	}
	if abi := int(hdr[elf.EI_OSABI]); abi != int(elf.ELFOSABI_NONE) {
		return curated.Errorf(FormatError, curated.Errorf(OSABI, abi, int(elf.ELFOSABI_NONE)))
	}
	if v := int(hdr[elf.EI_ABIVERSION]); v != 0 {
		return curated.Errorf(FormatError, curated.Errorf(ABIVersion, v, 0))
	}
	if v := int(binary.LittleEndian.Uint32(hdr[20:])); v != int(elf.EV_CURRENT) {
		return curated.Errorf(FormatError, curated.Errorf(ObjectVersion, v, int(elf.EV_CURRENT)))
	}

	return nil
}

func isTruncation(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// readError sorts errors from the elf package into format and io errors
func readError(err error) error {
	var fe *elf.FormatError
	if errors.As(err, &fe) || isTruncation(err) {
		return curated.Errorf(FormatError, err)
	}
	return curated.Errorf(IOError, err)
}

// foldState is carried from one program header to the next
type foldState struct {
	// the previous loadable segment
	last    Segment
	hasLast bool

	// the image so far. the cursor is the address after the last byte of
	// data. started is false until the first segment with file data
	data    []byte
	load    uint64
	cursor  uint64
	started bool
}

// next returns the state after the segment. segments that are not loadable
// are ignored
func (st foldState) next(index int, s Segment, read func(int, Segment) ([]byte, error)) (foldState, error) {
	if !s.IsLoad() {
		return st, nil
	}

	if err := s.Validate(index); err != nil {
		return st, curated.Errorf(FormatError, err)
	}

	if st.hasLast {
		if s.VirtAddr < st.last.VirtAddr {
			return st, curated.Errorf(FormatError, curated.Errorf(SegmentOrder, index, s.VirtAddr, st.last.VirtAddr))
		}
		// the end of the last segment was checked by Validate()
		end, _ := st.last.End()
		if s.VirtAddr < end {
			return st, curated.Errorf(FormatError, curated.Errorf(SegmentOverlap, index, s.VirtAddr, end))
		}
	}

	if s.FileSize > 0 {
		if !st.started {
			st.started = true
			st.load = s.VirtAddr
			st.cursor = s.VirtAddr
		}

		if s.VirtAddr+s.FileSize-st.load > MaxImageSize {
			return st, curated.Errorf(FormatError, curated.Errorf(ImageTooLarge, MaxImageSize))
		}

		b, err := read(index, s)
		if err != nil {
			return st, err
		}

		st.data = append(st.data, make([]byte, s.VirtAddr-st.cursor)...)
		st.data = append(st.data, b...)
		st.cursor = s.VirtAddr + s.FileSize
	}

	st.last = s
	st.hasLast = true

	return st, nil
}

const programHeaderFmt = " %-10s %-7s %-10s %-10s %-7s %-7s %-7s %-3s"

func logProgramHeaders(log *logger.Logger, segs []Segment) {
	if len(segs) == 0 {
		log.Log(logger.Allow, "flatten", "file has no program headers")
		return
	}

	log.Log(logger.Allow, "flatten", "Program headers:")
	log.Logf(logger.Allow, "flatten", programHeaderFmt,
		"Type", "Offset", "VirtAddr", "PhysAddr", "FileSiz", "MemSiz", "Align", "Flg")
	for _, s := range segs {
		log.Logf(logger.Allow, "flatten", programHeaderFmt, segmentColumns(s)...)
	}
}

// the zero padding of %#0Nx makes no allowance for the 0x prefix so the
// prefix is written out
func segmentColumns(s Segment) []any {
	return []any{
		s.TypeName(),
		fmt.Sprintf("0x%05x", s.Offset),
		fmt.Sprintf("0x%08x", s.VirtAddr),
		fmt.Sprintf("0x%08x", s.PhysAddr),
		fmt.Sprintf("0x%05x", s.FileSize),
		fmt.Sprintf("0x%05x", s.MemSize),
		fmt.Sprintf("0x%05x", s.Align),
		s.FlagString(),
	}
}
