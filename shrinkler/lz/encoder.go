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

package lz

import "github.com/tom42/gbaic/shrinkler/coder"

// Encoder turns literals and references into decisions for a coder.Coder.
// The same Encoder drives the range coder for the final output, the
// SizeMeasurer for comparing parses and the CountingCoder for building the
// next cost model.
type Encoder struct {
	coder coder.Coder

	pos        int
	afterMatch bool
	lastOffset int
}

// NewEncoder is the preferred method of initialisation for the Encoder
// type.
func NewEncoder(c coder.Coder) *Encoder {
	return &Encoder{
		coder: c,
	}
}

// EncodeLiteral codes a single byte.
func (enc *Encoder) EncodeLiteral(b byte) {
	enc.coder.Code(kindContext(enc.pos, enc.afterMatch), 0)
	codeLiteral(enc.coder, enc.pos, b)
	enc.pos++
	enc.afterMatch = false
}

// EncodeReference codes a copy of length bytes from offset bytes back. The
// offset is replaced by a repeated offset decision when possible.
func (enc *Encoder) EncodeReference(offset int, length int) {
	enc.coder.Code(kindContext(enc.pos, enc.afterMatch), 1)

	repeated := false
	if !enc.afterMatch && enc.lastOffset != 0 {
		repeated = offset == enc.lastOffset
		enc.coder.Code(repeatedContext(enc.pos), boolBit(repeated))
	}
	if !repeated {
		codeNumber(enc.coder, offsetContexts, offset+endMarker)
	}
	codeNumber(enc.coder, lengthContexts, length)

	enc.pos += length
	enc.afterMatch = true
	enc.lastOffset = offset
}

// Finish codes the end of the stream.
func (enc *Encoder) Finish() {
	enc.coder.Code(kindContext(enc.pos, enc.afterMatch), 1)
	if !enc.afterMatch && enc.lastOffset != 0 {
		enc.coder.Code(repeatedContext(enc.pos), 0)
	}
	codeNumber(enc.coder, offsetContexts, endMarker)
}

// Pos returns the number of bytes encoded so far.
func (enc *Encoder) Pos() int {
	return enc.pos
}
