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

// edge is a reference in a candidate parse. the cost is the cost of the
// whole parse up to the end of the reference. the source is the edge before
// it, with literals filling any gap between the two
type edge struct {
	pos    int
	offset int
	length int
	cost   int
	source *edge
}

func (e *edge) target() int {
	return e.pos + e.length
}

// EdgeFactory keeps count of the edges held by a Parser. When the number of
// live edges reaches the capacity the parser discards the less promising
// ones.
//
// The statistics are kept for the lifetime of the EdgeFactory, which is
// normally all the passes of a single compression.
type EdgeFactory struct {
	capacity int
	live     int

	maxEdgeCount    int
	maxCleanedEdges int
}

// NewEdgeFactory is the preferred method of initialisation for the
// EdgeFactory type.
func NewEdgeFactory(capacity int) *EdgeFactory {
	return &EdgeFactory{
		capacity: capacity,
	}
}

func (f *EdgeFactory) create(pos int, offset int, length int, cost int, source *edge) *edge {
	f.live++
	f.maxEdgeCount = max(f.maxEdgeCount, f.live)
	return &edge{
		pos:    pos,
		offset: offset,
		length: length,
		cost:   cost,
		source: source,
	}
}

func (f *EdgeFactory) destroy(_ *edge) {
	f.live--
}

func (f *EdgeFactory) full() bool {
	return f.live >= f.capacity
}

func (f *EdgeFactory) cleaned(n int) {
	f.maxCleanedEdges = max(f.maxCleanedEdges, n)
}

// start of a new parse. the statistics are kept
func (f *EdgeFactory) reset() {
	f.live = 0
}

// Capacity returns the number of edges that can be live before a cleanup.
func (f *EdgeFactory) Capacity() int {
	return f.capacity
}

// MaxEdgeCount returns the largest number of edges live at any one time.
// This can be more than the capacity because cleanups only happen between
// positions.
//
// An edge is live from the moment it is added to a bucket until it is
// replaced by a cheaper edge with the same offset, discarded by a cleanup or
// skip, or dropped from the literal paths. A bucket holds at most one edge
// for each offset so matches that continue from one position to the next do
// not add to the count. The count only grows large when many positions
// ahead are reachable with many different offsets.
func (f *EdgeFactory) MaxEdgeCount() int {
	return f.maxEdgeCount
}

// MaxCleanedEdges returns the largest number of edges discarded by a single
// cleanup.
func (f *EdgeFactory) MaxCleanedEdges() int {
	return f.maxCleanedEdges
}
