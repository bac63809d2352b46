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

import (
	"github.com/tom42/gbaic/curated"
	"github.com/tom42/gbaic/shrinkler/coder"
)

// Receiver is implemented by anything that accepts the symbols read by a
// Decoder. Returning an error stops the decoding.
type Receiver interface {
	Literal(b byte) error
	Reference(offset int, length int) error
}

// Decoder reads a symbol stream from a coder.RangeDecoder.
type Decoder struct {
	dec *coder.RangeDecoder

	pos        int
	afterMatch bool
	lastOffset int
}

// NewDecoder is the preferred method of initialisation for the Decoder
// type.
func NewDecoder(dec *coder.RangeDecoder) *Decoder {
	return &Decoder{
		dec: dec,
	}
}

// Decode reads symbols until the end of the stream and passes them to the
// Receiver. An error is returned if the stream is malformed or if the
// Receiver returns an error.
func (d *Decoder) Decode(r Receiver) error {
	for {
		if d.dec.Decode(kindContext(d.pos, d.afterMatch)) == 0 {
			if err := r.Literal(d.literal()); err != nil {
				return curated.Errorf(DecodeError, err)
			}
			d.pos++
			d.afterMatch = false
			continue
		}

		offset := d.lastOffset
		repeated := false
		if !d.afterMatch && d.lastOffset != 0 {
			repeated = d.dec.Decode(repeatedContext(d.pos)) == 1
		}
		if !repeated {
			n, err := d.number(offsetContexts)
			if err != nil {
				return curated.Errorf(DecodeError, err)
			}
			if n == endMarker {
				return nil
			}
			offset = n - endMarker
		}

		length, err := d.number(lengthContexts)
		if err != nil {
			return curated.Errorf(DecodeError, err)
		}
		if err := r.Reference(offset, length); err != nil {
			return curated.Errorf(DecodeError, err)
		}

		d.pos += length
		d.afterMatch = true
		d.lastOffset = offset
	}
}

func (d *Decoder) literal() byte {
	base := literalContext(d.pos)
	node := 1
	for node < 0x100 {
		node = node<<1 | d.dec.Decode(base+node)
	}
	return byte(node)
}

func (d *Decoder) number(group int) (int, error) {
	k := 1
	for d.dec.Decode(group+2*(k-1)) == 1 {
		k++
		if k > maxNumberBits {
			return 0, curated.Errorf(NumberTooLarge, d.pos)
		}
	}
	n := 1
	for i := k - 1; i >= 0; i-- {
		n = n<<1 | d.dec.Decode(group+2*i+1)
	}
	return n, nil
}
