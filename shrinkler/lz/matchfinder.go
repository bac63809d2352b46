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

// Match is a candidate reference found by the MatchFinder.
type Match struct {
	Offset int
	Length int
}

// MatchFinder finds earlier occurrences of the data at a position by walking
// chains of positions that start with the same two bytes.
type MatchFinder struct {
	data []byte

	minLength  int
	effort     int
	sameLength int

	// head of each chain while building, indexed by the two byte prefix
	head []int

	// the previous position with the same prefix. -1 ends the chain
	prev []int
}

// NewMatchFinder is the preferred method of initialisation for the
// MatchFinder type. The effort is the number of candidates examined for
// each position. The sameLength value is the number of candidates in a
// row that can fail to improve on the longest match before the search
// gives up.
//
// The chains are not built until Reset() is called.
func NewMatchFinder(data []byte, minLength int, effort int, sameLength int) *MatchFinder {
	return &MatchFinder{
		data:       data,
		minLength:  max(minLength, MinMatchLength),
		effort:     effort,
		sameLength: max(sameLength, 1),
		head:       make([]int, 0x10000),
	}
}

// Reset (re)builds the chains for the entire data.
func (mf *MatchFinder) Reset() {
	n := len(mf.data)
	if cap(mf.prev) < n {
		mf.prev = make([]int, n)
	}
	mf.prev = mf.prev[:n]

	for i := range mf.head {
		mf.head[i] = -1
	}
	for i := 0; i+1 < n; i++ {
		key := int(mf.data[i])<<8 | int(mf.data[i+1])
		mf.prev[i] = mf.head[key]
		mf.head[key] = i
	}
	if n > 0 {
		mf.prev[n-1] = -1
	}
}

// Matches appends to the slice the matches for the data at pos and returns
// the result. Each match is longer than the one before it. Of the matches of
// the same length only the nearest is reported.
func (mf *MatchFinder) Matches(pos int, matches []Match) []Match {
	n := len(mf.data)
	if pos+mf.minLength > n {
		return matches
	}

	best := mf.minLength - 1
	same := 0

	for cand, tries := mf.prev[pos], 0; cand >= 0 && tries < mf.effort; cand, tries = mf.prev[cand], tries+1 {
		// a longer match must agree at the byte after the current best
		if mf.data[cand+best] != mf.data[pos+best] {
			same++
			if same >= mf.sameLength {
				break
			}
			continue
		}

		l := 0
		for pos+l < n && mf.data[cand+l] == mf.data[pos+l] {
			l++
		}

		if l <= best {
			same++
			if same >= mf.sameLength {
				break
			}
			continue
		}

		matches = append(matches, Match{Offset: pos - cand, Length: l})
		best = l
		same = 0

		// nothing can be longer than a match reaching the end of the data
		if pos+l == n {
			break
		}
	}

	return matches
}
