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

// Package flatten turns an ARM ELF executable into a single flat image, as a
// loader would place it in memory.
//
// The ELF file must be a 32 bit little endian ARM executable. Every loadable
// segment is copied into the image at the position given by its address
// relative to the first loadable segment that has data in the file. Gaps
// between segments are filled with zero bytes. Segments that have no data in
// the file, such as those for uninitialised variables, contribute nothing.
//
// There is no loader to fix things up later so the flattener is strict about
// what it accepts. The loadable segments must be in address order, must not
// overlap and must be loaded at the same virtual and physical address.
//
// Errors are curated errors. A problem with the contents of the file is a
// FormatError, with a more detailed pattern such as SegmentOverlap nested
// inside it. A problem reading the file is an IOError.
package flatten
