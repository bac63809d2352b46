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

// BitPrecision is the number of fractional bits in sizes and costs.
const BitPrecision = 6

const (
	initialProbability = 0x8000
	adjustShift        = 4

	// the range coder keeps the interval size in [halfRange, fullRange]
	fullRange = 0x10000
	halfRange = 0x8000
)

// Coder is implemented by anything that accepts a sequence of context coded
// decisions.
type Coder interface {
	Code(context int, bit int)
}

// CostModel is implemented by anything that can estimate the cost of coding
// a decision. The cost is in units of 1/(1<<BitPrecision) bits.
type CostModel interface {
	Cost(context int, bit int) int
}

func newContexts(numContexts int) []uint16 {
	c := make([]uint16, numContexts)
	resetContexts(c)
	return c
}

func resetContexts(c []uint16) {
	for i := range c {
		c[i] = initialProbability
	}
}

// adapt returns the probability after coding bit with probability prob. the
// result is always in the range 15 to 0xfff0+15 so neither part of a split
// interval is ever empty
func adapt(prob uint16, bit int) uint16 {
	if bit == 0 {
		return prob - prob>>adjustShift
	}
	return prob + (0xffff >> adjustShift) - prob>>adjustShift
}
