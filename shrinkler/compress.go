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

package shrinkler

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/tom42/gbaic/curated"
	"github.com/tom42/gbaic/logger"
	"github.com/tom42/gbaic/shrinkler/coder"
	"github.com/tom42/gbaic/shrinkler/lz"
)

// Progress is implemented by anything that wants to follow the passes of a
// compression. Sizes are fixed point bit counts with coder.BitPrecision
// fractional bits.
type Progress interface {
	// a pass is about to start. passes are numbered from one
	PassBegin(pass int, passes int)

	// the parser has reached the position in the data
	Parsed(pos int, size int)

	// a pass has finished. the best size is the smallest size of this and
	// all earlier passes
	PassEnd(pass int, size int, best int)
}

type noProgress struct{}

func (noProgress) PassBegin(int, int)    {}
func (noProgress) Parsed(int, int)       {}
func (noProgress) PassEnd(int, int, int) {}

// Result of a successful compression.
type Result struct {
	// the packed stream. 32 bit words stored with the least significant
	// byte first
	Packed []byte

	// extra space needed when decompressing in place, in addition to the
	// space for the decompressed data. see the Compressor documentation
	SafetyMargin int

	// the peak number of reference edges live at once and the largest
	// number discarded by a single cleanup. see lz.EdgeFactory for what
	// counts as live
	EdgesConsidered int
	EdgesDiscarded  int

	// the size of the data that was compressed
	OriginalSize int

	// measured size of each pass and the pass that was chosen. passes are
	// numbered from one
	PassSizes []int
	BestPass  int

	references int
}

// Words returns the number of 32 bit words in the packed stream.
func (r *Result) Words() int {
	return len(r.Packed) / 4
}

// ReferencesExceeded returns true if more reference edges were wanted than
// were allowed. Compression is still correct in this case but may be
// improved by allowing more references.
func (r *Result) ReferencesExceeded() bool {
	return r.EdgesConsidered > r.references
}

// Compressor compresses data. The zero value is ready to use. The Log and
// Progress fields are optional.
//
// The SafetyMargin of the Result is for decompressors that unpack into the
// buffer holding the packed stream. The packed stream is placed at the end of
// the buffer and the data is written from the start. The buffer must be
// OriginalSize+SafetyMargin bytes long for the output never to overwrite
// packed data that has not yet been read.
type Compressor struct {
	Log      *logger.Logger
	Progress Progress
}

// Compress the data using the Compressor's default settings.
func Compress(data []byte, params Parameters) (*Result, error) {
	var c Compressor
	return c.Compress(data, params)
}

// Compress the data. The data is not changed.
func (c *Compressor) Compress(data []byte, params Parameters) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	progress := c.Progress
	if progress == nil {
		progress = noProgress{}
	}

	c.Log.Logf(logger.Allow, "shrinkler", "compressing %d bytes", len(data))
	c.Log.Logf(logger.Allow, "shrinkler", "parameters: %s", params)

	// the lz tools work on their own copy
	work := slices.Clone(data)

	finder := lz.NewMatchFinder(work, lz.MinMatchLength, params.Effort, params.SameLength)
	edges := lz.NewEdgeFactory(params.References)
	parser := lz.NewParser(work, finder, edges, params.LengthMargin, params.SkipLength)

	// the model starts empty, which gives every decision the same cost
	model := coder.NewCountingCoder(lz.NumContexts)

	var best *lz.Parse
	bestSize := math.MaxInt
	bestPass := 0
	sizes := make([]int, 0, params.Iterations)

	for pass := 1; pass <= params.Iterations; pass++ {
		progress.PassBegin(pass, params.Iterations)

		finder.Reset()
		candidate := parser.Parse(model, progress.Parsed)

		measurer := coder.NewSizeMeasurer(lz.NumContexts)
		candidate.Encode(lz.NewEncoder(measurer))
		size := measurer.Size()
		sizes = append(sizes, size)

		if size < bestSize {
			best = candidate
			bestSize = size
			bestPass = pass
		}

		// the model for the next pass follows the best parse so far, not
		// necessarily the parse of this pass
		counts := coder.NewCountingCoder(lz.NumContexts)
		best.Encode(lz.NewEncoder(counts))
		model = coder.Combine(model, counts)

		c.Log.Logf(logger.Allow, "shrinkler", "pass %d: %d references, size %d (best %d)",
			pass, len(candidate.References()), size, bestSize)
		progress.PassEnd(pass, size, bestSize)
	}

	rc := coder.NewRangeEncoder(lz.NumContexts)
	best.Encode(lz.NewEncoder(rc))
	words := rc.Finish()

	margin, err := verify(data, words)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Packed:          pack(words),
		SafetyMargin:    margin + len(words)*4 - len(data),
		EdgesConsidered: edges.MaxEdgeCount(),
		EdgesDiscarded:  edges.MaxCleanedEdges(),
		OriginalSize:    len(data),
		PassSizes:       sizes,
		BestPass:        bestPass,
		references:      params.References,
	}

	c.Log.Logf(logger.Allow, "shrinkler", "verified %d bytes packed into %d words (pass %d)", len(data), len(words), bestPass)
	c.Log.Logf(logger.Allow, "shrinkler", "safety margin %d", r.SafetyMargin)
	c.Log.Logf(logger.Allow, "shrinkler", "references considered %d, discarded %d", r.EdgesConsidered, r.EdgesDiscarded)
	if r.ReferencesExceeded() {
		c.Log.Logf(logger.Allow, "shrinkler", "more than %d references wanted", params.References)
	}

	return r, nil
}

// verify decodes the stream and compares it to the data. returns the front
// overlap margin
func verify(data []byte, words []uint32) (int, error) {
	dec := coder.NewRangeDecoder(lz.NumContexts, words)
	ver := lz.NewVerifier(data, dec)
	if err := lz.NewDecoder(dec).Decode(ver); err != nil {
		return 0, curated.Errorf(VerificationError, err)
	}
	if ver.Size() != len(data) {
		return 0, curated.Errorf(VerificationError, curated.Errorf(SizeMismatch, ver.Size(), len(data)))
	}
	return ver.FrontOverlapMargin(), nil
}

func pack(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

// Decompress a packed stream created by Compress(). Decompression fails if
// the output grows beyond limit bytes.
func Decompress(packed []byte, limit int) ([]byte, error) {
	if len(packed)%4 != 0 {
		return nil, curated.Errorf(DecompressError, curated.Errorf(BadPackedLength, len(packed)))
	}

	words := make([]uint32, len(packed)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(packed[i*4:])
	}

	data, err := lz.Decompress(words, limit)
	if err != nil {
		return nil, curated.Errorf(DecompressError, err)
	}
	return data, nil
}
