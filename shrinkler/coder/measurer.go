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

import "math"

// cost in fixed point of coding a decision whose probability, as a 16 bit
// value shifted right by four, is the index
var costTable = func() (t [4096]int) {
	for i := range t {
		p := (float64(i) + 0.5) / float64(len(t))
		t[i] = int(math.Round(-math.Log2(p) * (1 << BitPrecision)))
	}
	return t
}()

// SizeMeasurer predicts the size of the output of a RangeEncoder without
// producing any output. It adapts its contexts exactly as the encoder does.
type SizeMeasurer struct {
	contexts []uint16
	size     int
}

// NewSizeMeasurer is the preferred method of initialisation for the
// SizeMeasurer type.
func NewSizeMeasurer(numContexts int) *SizeMeasurer {
	return &SizeMeasurer{
		contexts: newContexts(numContexts),
	}
}

// Reset the measured size and the context probabilities.
func (m *SizeMeasurer) Reset() {
	resetContexts(m.contexts)
	m.size = 0
}

// Code implements the Coder interface.
func (m *SizeMeasurer) Code(context int, bit int) {
	prob := m.contexts[context]
	if bit == 0 {
		m.size += costTable[(fullRange-uint32(prob))>>4]
	} else {
		m.size += costTable[prob>>4]
	}
	m.contexts[context] = adapt(prob, bit)
}

// Size returns the measured size in fixed point bits.
func (m *SizeMeasurer) Size() int {
	return m.size
}
