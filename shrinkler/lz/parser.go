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
	"math"
	"slices"

	"github.com/tom42/gbaic/shrinkler/coder"
)

// the number of parse paths ending in literals that are followed at any one
// time. each has a different last offset
const maxLiteralPaths = 8

// progress is reported after at least this many bytes
const progressInterval = 4096

// cost of an unreachable position. adding any cost to it can not overflow
const noPath = math.MaxInt / 4

// literalPath is a parse that ends with one or more literals. the cost of
// the path at pos is key+prefix[pos], where prefix is the cost of coding
// every byte up to pos as a literal
type literalPath struct {
	key    int
	target int
	offset int

	// the source is nil for the path from the start of the data, which is
	// also the only path with a zero offset
	source *edge
}

// a path is not a literal path at the position where it starts, unless it
// starts at the beginning of the data
func (lp literalPath) validAt(pos int) bool {
	return lp.target < pos || lp.source == nil
}

// literalPaths is ordered by key, cheapest first
type literalPaths []literalPath

// insert the path, keeping only the cheapest path for each offset. the path
// that has been dropped as a result, if any, is returned
func (s *literalPaths) insert(lp literalPath) (literalPath, bool) {
	for i, q := range *s {
		if q.offset == lp.offset {
			if lp.key >= q.key {
				return lp, true
			}
			*s = slices.Delete(*s, i, i+1)
			s.insertOrdered(lp)
			return q, true
		}
	}

	if len(*s) < maxLiteralPaths {
		s.insertOrdered(lp)
		return literalPath{}, false
	}

	last := (*s)[len(*s)-1]
	if lp.key >= last.key {
		return lp, true
	}
	*s = (*s)[:len(*s)-1]
	s.insertOrdered(lp)
	return last, true
}

func (s *literalPaths) insertOrdered(lp literalPath) {
	i := len(*s)
	for i > 0 && (*s)[i-1].key > lp.key {
		i--
	}
	*s = slices.Insert(*s, i, lp)
}

// Reference is a reference in a Parse.
type Reference struct {
	Pos    int
	Offset int
	Length int
}

// Parse is a complete sequence of literals and references for some data.
type Parse struct {
	data []byte
	refs []Reference
}

// References returns the references in the parse, in order. Every byte not
// covered by a reference is a literal.
func (ps *Parse) References() []Reference {
	return ps.refs
}

// Encode the parse, including the end of the stream.
func (ps *Parse) Encode(enc *Encoder) {
	pos := 0
	for _, r := range ps.refs {
		for ; pos < r.Pos; pos++ {
			enc.EncodeLiteral(ps.data[pos])
		}
		enc.EncodeReference(r.Offset, r.Length)
		pos += r.Length
	}
	for ; pos < len(ps.data); pos++ {
		enc.EncodeLiteral(ps.data[pos])
	}
	enc.Finish()
}

// Parser finds the cheapest Parse of the data according to a cost model.
//
// The parser moves forward through the data one position at a time. Edges
// for every match found at a position are put in a bucket for the position
// the match ends at. When the parser reaches a position the cheapest edge
// in the bucket is the best way of arriving there with a reference. The
// other edges are kept as the start of literal paths if they have an offset
// that is worth repeating.
type Parser struct {
	data         []byte
	finder       *MatchFinder
	edges        *EdgeFactory
	lengthMargin int
	skipLength   int

	// state of the current parse
	model    coder.CostModel
	buckets  [][]*edge
	prefix   []int
	paths    literalPaths
	farthest int
	matches  []Match
}

// NewParser is the preferred method of initialisation for the Parser type.
// Matches of skipLength or more are taken without considering the
// alternatives. For other matches the lengthMargin shorter lengths are also
// considered.
func NewParser(data []byte, finder *MatchFinder, edges *EdgeFactory, lengthMargin int, skipLength int) *Parser {
	return &Parser{
		data:         data,
		finder:       finder,
		edges:        edges,
		lengthMargin: max(lengthMargin, 0),
		skipLength:   max(skipLength, MinMatchLength),
	}
}

// Parse the data. The MatchFinder given to NewParser() must have been Reset()
// for the data. The progress function is called from time to time with the
// current position and may be nil.
func (p *Parser) Parse(model coder.CostModel, progress func(pos int, size int)) *Parse {
	n := len(p.data)

	p.model = model
	p.edges.reset()
	p.buckets = make([][]*edge, n+1)
	p.prefix = make([]int, n+1)
	for i := range n {
		p.prefix[i+1] = p.prefix[i] + model.Cost(kindContext(i, false), 0) + literalCost(model, i, p.data[i])
	}
	p.paths = p.paths[:0]
	p.paths.insert(literalPath{})
	p.farthest = 0

	report := 0
	for pos := 0; pos < n; {
		if progress != nil && pos >= report {
			progress(pos, n)
			report = pos + progressInterval
		}
		pos = p.step(pos)
	}
	if progress != nil {
		progress(n, n)
	}

	var refs []Reference
	for e := p.end(n); e != nil; e = e.source {
		refs = append(refs, Reference{Pos: e.pos, Offset: e.offset, Length: e.length})
	}
	slices.Reverse(refs)

	p.model = nil
	p.buckets = nil
	p.prefix = nil

	return &Parse{
		data: p.data,
		refs: refs,
	}
}

// step processes the position and returns the next position to process
func (p *Parser) step(pos int) int {
	m := p.model

	best := p.arrive(pos)

	// the cheapest way to be at pos ready to code a new offset
	base := noPath
	var source *edge
	if best != nil {
		base = best.cost + m.Cost(kindContext(pos, true), 1)
		source = best
	}
	for _, lp := range p.paths {
		if !lp.validAt(pos) {
			continue
		}
		c := lp.key + p.prefix[pos] + m.Cost(kindContext(pos, false), 1)
		if lp.offset != 0 {
			c += m.Cost(repeatedContext(pos), 0)
		}
		if c < base {
			base = c
			source = lp.source
		}
	}

	p.matches = p.finder.Matches(pos, p.matches[:0])

	// offsets of literal paths can be repeated even if the match finder did
	// not find them
	for _, lp := range p.paths {
		if lp.offset == 0 || lp.offset > pos || !lp.validAt(pos) || p.found(lp.offset) {
			continue
		}
		if l := p.matchLength(pos, lp.offset); l >= MinMatchLength {
			p.matches = append(p.matches, Match{Offset: lp.offset, Length: l})
		}
	}

	if len(p.matches) == 0 {
		return pos + 1
	}

	longest := p.matches[0]
	for _, mt := range p.matches[1:] {
		if mt.Length > longest.Length {
			longest = mt
		}
	}
	skip := longest.Length >= p.skipLength

	for _, mt := range p.matches {
		if skip && mt != longest {
			continue
		}

		offsetCost := noPath
		if base < noPath {
			offsetCost = base + numberCost(m, offsetContexts, mt.Offset+endMarker)
		}
		repeatCost, repeatSource := p.repeated(pos, mt.Offset)

		shortest := max(MinMatchLength, mt.Length-p.lengthMargin)
		if skip {
			shortest = mt.Length
		}
		for l := shortest; l <= mt.Length; l++ {
			lc := numberCost(m, lengthContexts, l)
			if repeatCost < offsetCost {
				p.add(pos, mt.Offset, l, repeatCost+lc, repeatSource)
			} else if offsetCost < noPath {
				p.add(pos, mt.Offset, l, offsetCost+lc, source)
			}
		}
	}

	if skip {
		target := pos + longest.Length
		for i := pos + 1; i < target; i++ {
			p.discard(i)
		}
		return target
	}

	if p.edges.full() {
		p.cleanup(pos)
	}

	return pos + 1
}

// arrive empties the bucket for pos, turning the edges into literal paths,
// and returns the cheapest edge
func (p *Parser) arrive(pos int) *edge {
	bucket := p.buckets[pos]
	p.buckets[pos] = nil
	if len(bucket) == 0 {
		return nil
	}

	best := bucket[0]
	for _, e := range bucket[1:] {
		if e.cost < best.cost {
			best = e
		}
	}

	// the first literal after a reference is coded in a different context
	// to the literals counted in the prefix
	adjust := p.model.Cost(kindContext(pos, true), 0) - p.model.Cost(kindContext(pos, false), 0)

	for _, e := range bucket {
		lp := literalPath{
			key:    e.cost + adjust - p.prefix[pos],
			target: pos,
			offset: e.offset,
			source: e,
		}
		if dropped, ok := p.paths.insert(lp); ok && dropped.source != nil {
			p.edges.destroy(dropped.source)
		}
	}

	return best
}

// repeated returns the cost of being at pos ready to code a reference with
// the offset as a repeated offset
func (p *Parser) repeated(pos int, offset int) (int, *edge) {
	for _, lp := range p.paths {
		if lp.offset == offset && lp.validAt(pos) {
			c := lp.key + p.prefix[pos] + p.model.Cost(kindContext(pos, false), 1) + p.model.Cost(repeatedContext(pos), 1)
			return c, lp.source
		}
	}
	return noPath, nil
}

func (p *Parser) found(offset int) bool {
	for _, mt := range p.matches {
		if mt.Offset == offset {
			return true
		}
	}
	return false
}

func (p *Parser) matchLength(pos int, offset int) int {
	l := 0
	for pos+l < len(p.data) && p.data[pos+l] == p.data[pos+l-offset] {
		l++
	}
	return l
}

// add an edge to the bucket for the position the reference ends at. an edge
// with the same offset is only replaced if the new edge is cheaper
func (p *Parser) add(pos int, offset int, length int, cost int, source *edge) {
	t := pos + length
	bucket := p.buckets[t]
	for i, e := range bucket {
		if e.offset == offset {
			if e.cost <= cost {
				return
			}
			p.edges.destroy(e)
			bucket[i] = p.edges.create(pos, offset, length, cost, source)
			return
		}
	}
	p.buckets[t] = append(bucket, p.edges.create(pos, offset, length, cost, source))
	p.farthest = max(p.farthest, t)
}

func (p *Parser) discard(pos int) {
	for _, e := range p.buckets[pos] {
		p.edges.destroy(e)
	}
	p.buckets[pos] = nil
}

// cleanup reduces every bucket after pos to its cheapest edge
func (p *Parser) cleanup(pos int) {
	discarded := 0
	for t := pos + 1; t <= p.farthest; t++ {
		bucket := p.buckets[t]
		if len(bucket) < 2 {
			continue
		}
		keep := bucket[0]
		for _, e := range bucket[1:] {
			if e.cost < keep.cost {
				keep = e
			}
		}
		for _, e := range bucket {
			if e != keep {
				p.edges.destroy(e)
			}
		}
		discarded += len(bucket) - 1
		p.buckets[t] = append(bucket[:0], keep)
	}
	p.edges.cleaned(discarded)
}

// end returns the last edge of the cheapest complete parse. a nil edge
// means that the cheapest parse has no references
func (p *Parser) end(n int) *edge {
	m := p.model
	marker := numberCost(m, offsetContexts, endMarker)

	cost := noPath
	var last *edge

	for _, e := range p.buckets[n] {
		c := e.cost + m.Cost(kindContext(n, true), 1) + marker
		if c < cost {
			cost = c
			last = e
		}
	}
	for _, lp := range p.paths {
		if !lp.validAt(n) {
			continue
		}
		c := lp.key + p.prefix[n] + m.Cost(kindContext(n, false), 1) + marker
		if lp.offset != 0 {
			c += m.Cost(repeatedContext(n), 0)
		}
		if c < cost {
			cost = c
			last = lp.source
		}
	}

	return last
}
