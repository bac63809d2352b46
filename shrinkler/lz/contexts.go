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
	"math/bits"

	"github.com/tom42/gbaic/shrinkler/coder"
)

// MinMatchLength is the length of the shortest reference.
const MinMatchLength = 2

// context layout
const (
	kindContexts     = 0
	repeatedContexts = kindContexts + 4
	literalContexts  = repeatedContexts + 2
	offsetContexts   = literalContexts + 512
	lengthContexts   = offsetContexts + 64

	// NumContexts is the number of contexts required by a coder for the
	// symbol stream.
	NumContexts = lengthContexts + 64
)

// the value coded in place of an offset to indicate the end of the stream
const endMarker = 2

// the largest number of continuation decisions in a number
const maxNumberBits = 31

func kindContext(pos int, afterMatch bool) int {
	c := (pos & 1) << 1
	if afterMatch {
		c |= 1
	}
	return kindContexts + c
}

func repeatedContext(pos int) int {
	return repeatedContexts + pos&1
}

func literalContext(pos int) int {
	return literalContexts + (pos&1)*256
}

func codeLiteral(c coder.Coder, pos int, b byte) {
	base := literalContext(pos)
	node := 1
	for i := 7; i >= 0; i-- {
		bit := int(b>>i) & 1
		c.Code(base+node, bit)
		node = node<<1 | bit
	}
}

func literalCost(m coder.CostModel, pos int, b byte) int {
	base := literalContext(pos)
	node := 1
	cost := 0
	for i := 7; i >= 0; i-- {
		bit := int(b>>i) & 1
		cost += m.Cost(base+node, bit)
		node = node<<1 | bit
	}
	return cost
}

// codeNumber codes n, which must be two or more. the position of the
// highest set bit is coded first, as a run of continuation decisions
func codeNumber(c coder.Coder, group int, n int) {
	k := bits.Len(uint(n)) - 1
	for i := range k {
		if i < k-1 {
			c.Code(group+2*i, 1)
		} else {
			c.Code(group+2*i, 0)
		}
	}
	for i := k - 1; i >= 0; i-- {
		c.Code(group+2*i+1, (n>>i)&1)
	}
}

func numberCost(m coder.CostModel, group int, n int) int {
	k := bits.Len(uint(n)) - 1
	cost := 0
	for i := range k {
		if i < k-1 {
			cost += m.Cost(group+2*i, 1)
		} else {
			cost += m.Cost(group+2*i, 0)
		}
	}
	for i := k - 1; i >= 0; i-- {
		cost += m.Cost(group+2*i+1, (n>>i)&1)
	}
	return cost
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
