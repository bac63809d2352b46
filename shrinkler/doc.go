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

// Package shrinkler compresses data with the multi-pass LZ scheme implemented
// by the lz and coder packages, and proves the result by decoding it again.
//
// Compression is a number of passes. Each pass parses the data using a cost
// model learned from the best parse of the passes before it, so that later
// passes can make better choices between literals and references. The size
// of every parse is measured exactly and the smallest parse is the one that
// is finally encoded.
//
// The encoded stream is then decoded and compared with the original data. A
// stream that does not decode to the original data is never returned. The
// decoding also measures the safety margin needed to decompress the stream
// in place.
//
// Compress() and Decompress() are the main entry points. A Compressor is
// used instead of Compress() when a logger.Logger or a Progress
// implementation is to be attached.
package shrinkler
