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

// CountingCoder counts the decisions coded in each context. As a CostModel
// it charges each decision according to how often it has been seen, with
// one imaginary sighting of each value so that nothing is free and nothing
// is impossible. An empty CountingCoder charges one bit for every decision.
type CountingCoder struct {
	counts [][2]int
}

// NewCountingCoder is the preferred method of initialisation for the
// CountingCoder type.
func NewCountingCoder(numContexts int) *CountingCoder {
	return &CountingCoder{
		counts: make([][2]int, numContexts),
	}
}

// Code implements the Coder interface.
func (c *CountingCoder) Code(context int, bit int) {
	c.counts[context][bit]++
}

// Cost implements the CostModel interface.
func (c *CountingCoder) Cost(context int, bit int) int {
	n := c.counts[context]
	total := float64(n[0] + n[1] + 2)
	return int(math.Round(math.Log2(total/float64(n[bit]+1)) * (1 << BitPrecision)))
}

// Counts returns the number of zeros and ones counted in the context.
func (c *CountingCoder) Counts(context int) (zeros int, ones int) {
	return c.counts[context][0], c.counts[context][1]
}

// Combine creates a new CountingCoder from an older model and the counts of
// a newly coded stream. The history is halved so that recent streams weigh
// more than old ones. Neither argument is changed.
//
// The two models must have the same number of contexts.
func Combine(old *CountingCoder, fresh *CountingCoder) *CountingCoder {
	c := NewCountingCoder(len(fresh.counts))
	for i := range c.counts {
		c.counts[i][0] = old.counts[i][0]/2 + fresh.counts[i][0]
		c.counts[i][1] = old.counts[i][1]/2 + fresh.counts[i][1]
	}
	return c
}
