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

// RangeDecoder reads decisions coded by RangeEncoder. Reading past the end
// of the stream yields zero bits.
type RangeDecoder struct {
	contexts []uint16

	words  []uint32
	bitPos int

	// the code value relative to the low end of the interval
	value uint32
	size  uint32
}

// NewRangeDecoder is the preferred method of initialisation for the
// RangeDecoder type.
func NewRangeDecoder(numContexts int, words []uint32) *RangeDecoder {
	dec := &RangeDecoder{
		contexts: newContexts(numContexts),
		words:    words,
		size:     fullRange,
	}
	for range 16 {
		dec.value = dec.value<<1 | dec.next()
	}
	return dec
}

// Decode the next decision in the context.
func (dec *RangeDecoder) Decode(context int) int {
	prob := dec.contexts[context]
	threshold := (dec.size * uint32(prob)) >> 16

	var bit int
	if dec.value < threshold {
		bit = 1
		dec.size = threshold
	} else {
		dec.value -= threshold
		dec.size -= threshold
	}
	dec.contexts[context] = adapt(prob, bit)

	for dec.size < halfRange {
		dec.size <<= 1
		dec.value = dec.value<<1 | dec.next()
	}

	return bit
}

// BytesRead returns the number of bytes of the stream fetched so far. Words
// are fetched whole so the value is always a multiple of four. Bits read past
// the end of the stream are not counted.
func (dec *RangeDecoder) BytesRead() int {
	return min((dec.bitPos+31)>>5, len(dec.words)) * 4
}

func (dec *RangeDecoder) next() uint32 {
	i := dec.bitPos
	dec.bitPos++
	if i>>5 >= len(dec.words) {
		return 0
	}
	return (dec.words[i>>5] >> (31 - i&31)) & 1
}
