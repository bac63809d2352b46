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

// Verifier is a Receiver that checks every decoded byte against the data the
// stream was made from.
//
// It also measures how far ahead of the stream the output gets. When the
// packed data is stored at the end of the buffer it is unpacked into, the
// unpacked data must never overwrite bytes of the stream that have not yet
// been read.
type Verifier struct {
	original []byte
	dec      *coder.RangeDecoder

	pos    int
	margin int
}

// NewVerifier is the preferred method of initialisation for the Verifier
// type. The RangeDecoder should be the one given to the Decoder.
func NewVerifier(original []byte, dec *coder.RangeDecoder) *Verifier {
	return &Verifier{
		original: original,
		dec:      dec,
	}
}

// Literal implements the Receiver interface.
func (v *Verifier) Literal(b byte) error {
	if v.pos >= len(v.original) {
		return curated.Errorf(TooLong, len(v.original))
	}
	if v.original[v.pos] != b {
		return curated.Errorf(Mismatch, v.pos)
	}
	v.pos++
	v.update()
	return nil
}

// Reference implements the Receiver interface.
func (v *Verifier) Reference(offset int, length int) error {
	if offset < 1 || offset > v.pos {
		return curated.Errorf(InvalidReference, offset, length, v.pos)
	}
	if length > len(v.original)-v.pos {
		return curated.Errorf(TooLong, len(v.original))
	}

	// the bytes before pos have already been checked, so copying from the
	// original is the same as copying from the output
	for i := range length {
		if v.original[v.pos+i] != v.original[v.pos+i-offset] {
			return curated.Errorf(Mismatch, v.pos+i)
		}
	}
	v.pos += length
	v.update()
	return nil
}

func (v *Verifier) update() {
	v.margin = max(v.margin, v.pos-v.dec.BytesRead())
}

// Size returns the number of bytes decoded so far.
func (v *Verifier) Size() int {
	return v.pos
}

// FrontOverlapMargin returns the largest number of bytes by which the output
// got ahead of the stream.
func (v *Verifier) FrontOverlapMargin() int {
	return v.margin
}

type decompressor struct {
	out   []byte
	limit int
}

func (d *decompressor) Literal(b byte) error {
	if len(d.out) >= d.limit {
		return curated.Errorf(TooLong, d.limit)
	}
	d.out = append(d.out, b)
	return nil
}

func (d *decompressor) Reference(offset int, length int) error {
	if offset < 1 || offset > len(d.out) {
		return curated.Errorf(InvalidReference, offset, length, len(d.out))
	}
	if length > d.limit-len(d.out) {
		return curated.Errorf(TooLong, d.limit)
	}

	// copied one byte at a time because the source may overlap the bytes
	// being written
	for range length {
		d.out = append(d.out, d.out[len(d.out)-offset])
	}
	return nil
}

// Decompress rebuilds data from a stream. Decoding stops with an error if the
// data grows beyond limit bytes.
func Decompress(words []uint32, limit int) ([]byte, error) {
	d := &decompressor{
		out:   make([]byte, 0),
		limit: limit,
	}
	err := NewDecoder(coder.NewRangeDecoder(NumContexts, words)).Decode(d)
	if err != nil {
		return nil, err
	}
	return d.out, nil
}
