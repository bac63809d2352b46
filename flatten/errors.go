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

// Sentinal errors for the flatten package.
const (
	FormatError = "format error: %v"
	IOError     = "io error: %v"
	FileError   = "%s: %v"

	NotELF        = "file is not a valid ELF file"
	WrongProfile  = "file is not a 32-bit little endian ARM executable ELF file"
	FormatVersion = "unknown ELF format version %d. Expected %d"
	OSABI         = "unknown ELF OS ABI %d. Expected none (%d)"
	ABIVersion    = "unknown ABI version %d. Expected %d"
	ObjectVersion = "unknown object file version %d. Expected %d"

	SegmentAddress    = "segment %d: virtual address %#x differs from physical address %#x"
	SegmentSize       = "segment %d: file size %#x is larger than memory size %#x"
	SegmentAlignment  = "segment %d: alignment %#x is not a power of two"
	SegmentCongruence = "segment %d: offset %#x and address %#x are not congruent modulo %#x"
	SegmentOverflow   = "segment %d: end of segment is beyond the address space"
	SegmentOrder      = "segment %d: address %#x is lower than the previous segment (%#x)"
	SegmentOverlap    = "segment %d: address %#x overlaps the previous segment (ends at %#x)"
	SegmentTruncated  = "segment %d: data is truncated"
	ImageTooLarge     = "flattened image is larger than %d bytes"
)
