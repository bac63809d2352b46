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

package coder

// RangeEncoder codes decisions into a bit stream. Bits are packed most
// significant bit first into 32 bit words.
type RangeEncoder struct {
	contexts []uint16

	words []uint32
	nbits int

	// the current interval, relative to the bits already written. the low
	// end holds the sixteen bits that follow the written bits
	low  uint32
	size uint32
}

// NewRangeEncoder is the preferred method of initialisation for the
// RangeEncoder type.
func NewRangeEncoder(numContexts int) *RangeEncoder {
	enc := &RangeEncoder{
		contexts: newContexts(numContexts),
	}
	enc.Reset()
	return enc
}

// Reset the encoder so that it can start a new stream. Context
// probabilities are returned to their initial values.
func (enc *RangeEncoder) Reset() {
	resetContexts(enc.contexts)
	enc.words = enc.words[:0]
	enc.nbits = 0
	enc.low = 0
	enc.size = fullRange
}

// Code implements the Coder interface.
func (enc *RangeEncoder) Code(context int, bit int) {
	prob := enc.contexts[context]
	threshold := (enc.size * uint32(prob)) >> 16

	if bit == 0 {
		enc.low += threshold
		enc.size -= threshold
		if enc.low >= fullRange {
			enc.carry()
			enc.low -= fullRange
		}
	} else {
		enc.size = threshold
	}
	enc.contexts[context] = adapt(prob, bit)

	for enc.size < halfRange {
		enc.emit(enc.low >> 15)
		enc.low = (enc.low << 1) & 0xffff
		enc.size <<= 1
	}
}

// Bits returns the number of bits written so far. It does not include the
// bits that will be written by Finish().
func (enc *RangeEncoder) Bits() int {
	return enc.nbits
}

// Finish writes the shortest tail that identifies the final interval,
// assuming a decoder that reads zero bits after the end of the stream. The
// returned words are owned by the encoder until the next call to Reset().
func (enc *RangeEncoder) Finish() []uint32 {
	for k := 0; k <= 16; k++ {
		step := uint32(1) << (16 - k)
		v := (enc.low + step - 1) &^ (step - 1)
		if v >= enc.low+enc.size {
			continue
		}
		if v >= fullRange {
			enc.carry()
			v -= fullRange
		}
		for i := range k {
			enc.emit(v >> (15 - i))
		}
		break
	}
	return enc.words
}

func (enc *RangeEncoder) emit(bit uint32) {
	if enc.nbits&31 == 0 {
		enc.words = append(enc.words, 0)
	}
	if bit&1 == 1 {
		enc.words[enc.nbits>>5] |= 1 << (31 - enc.nbits&31)
	}
	enc.nbits++
}

// carry adds one to the bits already written
func (enc *RangeEncoder) carry() {
	for i := enc.nbits - 1; i >= 0; i-- {
		mask := uint32(1) << (31 - i&31)
		enc.words[i>>5] ^= mask
		if enc.words[i>>5]&mask != 0 {
			return
		}
	}
}
