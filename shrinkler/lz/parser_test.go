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

package lz_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/tom42/gbaic/shrinkler/coder"
	"github.com/tom42/gbaic/shrinkler/lz"
	"github.com/tom42/gbaic/test"
)

func TestMatchFinder(t *testing.T) {
	data := []byte("abcdxabcyabcd")

	mf := lz.NewMatchFinder(data, lz.MinMatchLength, 100, 10)
	mf.Reset()

	m := mf.Matches(9, nil)
	test.DemandEquality(t, len(m), 2)
	test.ExpectEquality(t, m[0], lz.Match{Offset: 4, Length: 3})
	test.ExpectEquality(t, m[1], lz.Match{Offset: 9, Length: 4})

	// nothing before the first occurrence
	test.ExpectEquality(t, len(mf.Matches(0, nil)), 0)

	// no room for a match at the last byte
	test.ExpectEquality(t, len(mf.Matches(len(data)-1, nil)), 0)

	// effort limits the number of candidates
	mf = lz.NewMatchFinder(data, lz.MinMatchLength, 1, 10)
	mf.Reset()
	m = mf.Matches(9, nil)
	test.DemandEquality(t, len(m), 1)
	test.ExpectEquality(t, m[0], lz.Match{Offset: 4, Length: 3})

	// no effort, no matches
	mf = lz.NewMatchFinder(data, lz.MinMatchLength, 0, 10)
	mf.Reset()
	test.ExpectEquality(t, len(mf.Matches(9, nil)), 0)
}

func TestMatchFinderSameLength(t *testing.T) {
	data := []byte("abcdab1ab2ab3abcd")

	mf := lz.NewMatchFinder(data, lz.MinMatchLength, 100, 10)
	mf.Reset()
	m := mf.Matches(13, nil)
	test.DemandEquality(t, len(m), 2)
	test.ExpectEquality(t, m[0], lz.Match{Offset: 3, Length: 2})
	test.ExpectEquality(t, m[1], lz.Match{Offset: 13, Length: 4})

	// the search gives up after two candidates that are no better
	mf = lz.NewMatchFinder(data, lz.MinMatchLength, 100, 2)
	mf.Reset()
	m = mf.Matches(13, nil)
	test.DemandEquality(t, len(m), 1)
	test.ExpectEquality(t, m[0], lz.Match{Offset: 3, Length: 2})
}

func TestMatchFinderOverlap(t *testing.T) {
	// a match can overlap the data it matches
	data := bytes.Repeat([]byte{'z'}, 20)

	mf := lz.NewMatchFinder(data, lz.MinMatchLength, 100, 10)
	mf.Reset()
	m := mf.Matches(1, nil)
	test.DemandEquality(t, len(m), 1)
	test.ExpectEquality(t, m[0], lz.Match{Offset: 1, Length: 19})
}

func TestEdgeFactory(t *testing.T) {
	edges := lz.NewEdgeFactory(1000)
	test.ExpectEquality(t, edges.Capacity(), 1000)
	test.ExpectEquality(t, edges.MaxEdgeCount(), 0)
	test.ExpectEquality(t, edges.MaxCleanedEdges(), 0)
}

type parseSetup struct {
	effort       int
	sameLength   int
	lengthMargin int
	skipLength   int
	capacity     int
}

var defaultSetup = parseSetup{
	effort:       200,
	sameLength:   20,
	lengthMargin: 2,
	skipLength:   2000,
	capacity:     100000,
}

func parse(data []byte, s parseSetup) (*lz.Parse, *lz.EdgeFactory) {
	mf := lz.NewMatchFinder(data, lz.MinMatchLength, s.effort, s.sameLength)
	mf.Reset()
	edges := lz.NewEdgeFactory(s.capacity)
	p := lz.NewParser(data, mf, edges, s.lengthMargin, s.skipLength)
	return p.Parse(coder.NewCountingCoder(lz.NumContexts), nil), edges
}

func pack(ps *lz.Parse) []uint32 {
	rc := coder.NewRangeEncoder(lz.NumContexts)
	ps.Encode(lz.NewEncoder(rc))
	return rc.Finish()
}

// checkParse tests that the references in a parse are usable and that the
// packed parse decompresses to the data
func checkParse(t *testing.T, data []byte, ps *lz.Parse, tags ...any) {
	t.Helper()

	pos := 0
	for _, r := range ps.References() {
		test.ExpectSuccess(t, r.Pos >= pos, tags...)
		test.ExpectSuccess(t, r.Offset >= 1 && r.Offset <= r.Pos, tags...)
		test.ExpectSuccess(t, r.Length >= lz.MinMatchLength, tags...)
		test.ExpectSuccess(t, r.Pos+r.Length <= len(data), tags...)
		pos = r.Pos + r.Length
	}

	out, err := lz.Decompress(pack(ps), len(data))
	test.DemandSuccess(t, err, tags...)
	test.ExpectBytes(t, out, data, tags...)
}

func testData() map[string][]byte {
	rng := rand.New(rand.NewPCG(42, 42))

	random := make([]byte, 3000)
	for i := range random {
		random[i] = byte(rng.UintN(256))
	}

	// copies of earlier data at random offsets, with some literals
	copies := make([]byte, 0, 8000)
	for len(copies) < 8000 {
		if len(copies) < 16 || rng.IntN(4) == 0 {
			copies = append(copies, byte(rng.UintN(16)))
			continue
		}
		offset := 1 + rng.IntN(len(copies))
		length := 2 + rng.IntN(40)
		for range length {
			copies = append(copies, copies[len(copies)-offset])
		}
	}

	return map[string][]byte{
		"empty":    {},
		"single":   {0x42},
		"pair":     {0x42, 0x42},
		"run":      bytes.Repeat([]byte{0}, 1000),
		"text":     []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 40)),
		"random":   random,
		"copies":   copies,
		"alphabet": []byte("abcdefghijklmnopqrstuvwxyz"),
	}
}

func TestParseRoundTrip(t *testing.T) {
	for name, data := range testData() {
		ps, _ := parse(data, defaultSetup)
		checkParse(t, data, ps, name)
	}
}

func TestParseFindsReferences(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 40))
	ps, _ := parse(data, defaultSetup)
	test.ExpectSuccess(t, len(ps.References()) > 0)

	words := pack(ps)
	test.ExpectSuccess(t, len(words)*4 < len(data)/4)
}

func TestParseDeterminism(t *testing.T) {
	data := testData()["copies"]
	a, _ := parse(data, defaultSetup)
	b, _ := parse(data, defaultSetup)
	test.ExpectSuccess(t, slices.Equal(a.References(), b.References()))
}

func TestParseSkipLength(t *testing.T) {
	data := append(bytes.Repeat([]byte("ab"), 1500), []byte("the end")...)

	s := defaultSetup
	s.skipLength = 100
	ps, _ := parse(data, s)
	checkParse(t, data, ps)

	// the long match is taken in one go
	long := false
	for _, r := range ps.References() {
		if r.Length >= 100 {
			long = true
		}
	}
	test.ExpectSuccess(t, long)
}

func TestParseEdgeCapacity(t *testing.T) {
	data := testData()["copies"]

	s := defaultSetup
	s.capacity = 10
	s.lengthMargin = 10
	ps, edges := parse(data, s)
	checkParse(t, data, ps)

	test.ExpectSuccess(t, edges.MaxEdgeCount() > edges.Capacity())
	test.ExpectSuccess(t, edges.MaxCleanedEdges() > 0)

	// a second parse with the same edge factory keeps the statistics
	considered := edges.MaxEdgeCount()
	mf := lz.NewMatchFinder([]byte("abab"), lz.MinMatchLength, 10, 10)
	mf.Reset()
	lz.NewParser([]byte("abab"), mf, edges, 1, 100).Parse(coder.NewCountingCoder(lz.NumContexts), nil)
	test.ExpectEquality(t, edges.MaxEdgeCount(), considered)
}

func TestParseModel(t *testing.T) {
	// parsing with a model learned from an earlier parse still produces a
	// valid parse
	data := testData()["copies"]
	ps, _ := parse(data, defaultSetup)

	counting := coder.NewCountingCoder(lz.NumContexts)
	ps.Encode(lz.NewEncoder(counting))

	mf := lz.NewMatchFinder(data, lz.MinMatchLength, defaultSetup.effort, defaultSetup.sameLength)
	mf.Reset()
	edges := lz.NewEdgeFactory(defaultSetup.capacity)
	p := lz.NewParser(data, mf, edges, defaultSetup.lengthMargin, defaultSetup.skipLength)

	var reports []int
	second := p.Parse(counting, func(pos int, size int) {
		test.ExpectEquality(t, size, len(data))
		reports = append(reports, pos)
	})
	checkParse(t, data, second)

	test.DemandSuccess(t, len(reports) >= 2)
	test.ExpectEquality(t, reports[0], 0)
	test.ExpectEquality(t, reports[len(reports)-1], len(data))
	test.ExpectSuccess(t, slices.IsSorted(reports))
}
