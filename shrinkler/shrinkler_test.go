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

package shrinkler_test

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/tom42/gbaic/curated"
	"github.com/tom42/gbaic/logger"
	"github.com/tom42/gbaic/shrinkler"
	"github.com/tom42/gbaic/test"
)

func TestPresets(t *testing.T) {
	p, err := shrinkler.NewParameters(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, shrinkler.Parameters{
		Iterations:   2,
		LengthMargin: 2,
		SameLength:   20,
		Effort:       200,
		SkipLength:   2000,
		References:   100000,
	})

	// references do not change with the preset
	p, err = shrinkler.NewParameters(9)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Iterations, 9)
	test.ExpectEquality(t, p.SkipLength, 9000)
	test.ExpectEquality(t, p.References, shrinkler.DefaultReferences)

	for _, preset := range []int{0, 10, -1} {
		_, err = shrinkler.NewParameters(preset)
		test.ExpectFailure(t, err, preset)
		test.ExpectSuccess(t, curated.Is(err, shrinkler.ParameterError), preset)
		test.ExpectSuccess(t, curated.Has(err, shrinkler.InvalidPreset), preset)
	}
}

func TestValidate(t *testing.T) {
	good, _ := shrinkler.NewParameters(shrinkler.DefaultPreset)
	test.ExpectSuccess(t, good.Validate())

	bad := []func(p *shrinkler.Parameters){
		func(p *shrinkler.Parameters) { p.Iterations = 0 },
		func(p *shrinkler.Parameters) { p.LengthMargin = -1 },
		func(p *shrinkler.Parameters) { p.SameLength = 0 },
		func(p *shrinkler.Parameters) { p.Effort = -1 },
		func(p *shrinkler.Parameters) { p.SkipLength = 1 },
		func(p *shrinkler.Parameters) { p.References = 999 },
	}
	for i, f := range bad {
		p := good
		f(&p)
		err := p.Validate()
		test.ExpectFailure(t, err, i)
		test.ExpectSuccess(t, curated.Has(err, shrinkler.InvalidParameter), i)

		// invalid parameters are rejected before any work is done
		r, err := shrinkler.Compress([]byte("data"), p)
		test.ExpectFailure(t, err, i)
		test.ExpectSuccess(t, r == nil, i)
		test.ExpectSuccess(t, curated.Is(err, shrinkler.ParameterError), i)
	}

	// the smallest allowed values
	p := shrinkler.Parameters{
		Iterations:   1,
		LengthMargin: 0,
		SameLength:   1,
		Effort:       0,
		SkipLength:   2,
		References:   1000,
	}
	test.ExpectSuccess(t, p.Validate())
}

// data that looks a little like a program: a mix of repeated instructions,
// tables and noise
func program(seed uint64, size int) []byte {
	rng := rand.New(rand.NewPCG(seed, 1))
	data := make([]byte, 0, size)
	for len(data) < size {
		switch rng.IntN(3) {
		case 0:
			ins := []byte{0x00, 0x20, byte(rng.IntN(8)), 0xe3}
			data = append(data, ins...)
		case 1:
			if len(data) > 16 {
				offset := 4 * (1 + rng.IntN(len(data)/4))
				length := 4 + rng.IntN(32)
				for range length {
					data = append(data, data[len(data)-offset])
				}
			}
		case 2:
			data = append(data, byte(rng.Uint32()))
		}
	}
	return data[:size]
}

func testData() map[string][]byte {
	return map[string][]byte{
		"empty":   {},
		"byte":    {0xaa},
		"zeros":   make([]byte, 5000),
		"text":    []byte(strings.Repeat("Lost Marbles for the Game Boy Advance. ", 50)),
		"program": program(1, 20000),
	}
}

func TestRoundTrip(t *testing.T) {
	params, err := shrinkler.NewParameters(2)
	test.DemandSuccess(t, err)

	for name, data := range testData() {
		r, err := shrinkler.Compress(data, params)
		test.DemandSuccess(t, err, name)
		test.ExpectEquality(t, len(r.Packed)%4, 0, name)
		test.ExpectEquality(t, r.Words(), len(r.Packed)/4, name)
		test.ExpectEquality(t, r.OriginalSize, len(data), name)

		out, err := shrinkler.Decompress(r.Packed, len(data))
		test.DemandSuccess(t, err, name)
		test.ExpectBytes(t, out, data, name)
	}
}

func TestRoundTripPresets(t *testing.T) {
	data := program(2, 6000)
	for preset := shrinkler.MinPreset; preset <= 4; preset++ {
		params, err := shrinkler.NewParameters(preset)
		test.DemandSuccess(t, err)
		r, err := shrinkler.Compress(data, params)
		test.DemandSuccess(t, err, preset)
		out, err := shrinkler.Decompress(r.Packed, len(data))
		test.DemandSuccess(t, err, preset)
		test.ExpectBytes(t, out, data, preset)
	}
}

func TestCompression(t *testing.T) {
	params, _ := shrinkler.NewParameters(2)

	data := testData()["text"]
	r, err := shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(r.Packed) < len(data)/4)

	data = testData()["zeros"]
	r, err = shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(r.Packed) < 64)
}

func TestDataUnchanged(t *testing.T) {
	params, _ := shrinkler.NewParameters(1)
	data := program(3, 4000)
	original := bytes.Clone(data)
	_, err := shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, data, original)
}

func TestDeterminism(t *testing.T) {
	params, _ := shrinkler.NewParameters(3)
	data := program(4, 15000)

	a, err := shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)
	b, err := shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)

	test.ExpectBytes(t, b.Packed, a.Packed)
	test.ExpectEquality(t, b.SafetyMargin, a.SafetyMargin)
	test.ExpectEquality(t, b.EdgesConsidered, a.EdgesConsidered)
	test.ExpectEquality(t, b.EdgesDiscarded, a.EdgesDiscarded)
}

func TestBestPass(t *testing.T) {
	params, _ := shrinkler.NewParameters(4)
	data := program(5, 10000)

	r, err := shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(r.PassSizes), params.Iterations)
	test.DemandSuccess(t, r.BestPass >= 1 && r.BestPass <= params.Iterations)

	best := r.PassSizes[r.BestPass-1]
	for i, s := range r.PassSizes {
		test.ExpectSuccess(t, best <= s, "pass", i+1)
	}

	// the first of equally good passes is chosen
	for i := range r.BestPass - 1 {
		test.ExpectInequality(t, r.PassSizes[i], best, "pass", i+1)
	}
}

func TestSafetyMargin(t *testing.T) {
	params, _ := shrinkler.NewParameters(2)

	for name, data := range testData() {
		r, err := shrinkler.Compress(data, params)
		test.DemandSuccess(t, err, name)
		test.ExpectSuccess(t, r.SafetyMargin >= 0, name)
	}
}

func TestReferences(t *testing.T) {
	// the smallest reference buffer must not cause a failure, whatever the
	// edge statistics turn out to be
	params, _ := shrinkler.NewParameters(2)
	params.References = shrinkler.MinReferences
	params.LengthMargin = 50

	data := program(6, 20000)
	r, err := shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.ReferencesExceeded(), r.EdgesConsidered > params.References)

	out, err := shrinkler.Decompress(r.Packed, len(data))
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, out, data)
}

// staircase returns data ending with a key that, at its first byte, matches
// every length from 2 to n, each at a different offset. the key starts with
// a pair of bytes found nowhere else except at the start of each copy
func staircase(n int) []byte {
	rng := rand.New(rand.NewPCG(8, 1))
	key := make([]byte, n+1)
	key[0], key[1] = 0xff, 0xff
	for i := 2; i < len(key); i++ {
		key[i] = 'a' + byte(rng.IntN(16))
	}

	// the longest copies come first so that the matches found walking back
	// from the final key get longer as they get further away
	var data []byte
	for k := n; k >= 2; k-- {
		data = append(data, key[:k]...)
		data = append(data, key[k]^0x80)
	}
	return append(data, key...)
}

func TestReferencesHint(t *testing.T) {
	params, _ := shrinkler.NewParameters(2)
	params.Iterations = 1
	params.Effort = 1000
	params.References = shrinkler.MinReferences

	// about 400 matches at the start of the final key, each adding an edge
	// for three lengths
	data := staircase(400)

	c := shrinkler.Compressor{
		Log: logger.NewLogger(100),
	}
	r, err := c.Compress(data, params)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, r.ReferencesExceeded(), r.EdgesConsidered)
	test.ExpectSuccess(t, r.EdgesDiscarded > 0, r.EdgesDiscarded)

	w := &strings.Builder{}
	test.ExpectSuccess(t, c.Log.Write(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "shrinkler: more than 1000 references wanted"))

	out, err := shrinkler.Decompress(r.Packed, len(data))
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, out, data)
}

type progress struct {
	begin  []int
	end    []int
	parsed int
	best   int
}

func (p *progress) PassBegin(pass int, passes int) {
	p.begin = append(p.begin, pass)
}

func (p *progress) Parsed(pos int, size int) {
	p.parsed++
}

func (p *progress) PassEnd(pass int, size int, best int) {
	p.end = append(p.end, pass)
	p.best = best
}

func TestCompressor(t *testing.T) {
	params, _ := shrinkler.NewParameters(3)
	data := program(7, 5000)

	prg := &progress{}
	c := shrinkler.Compressor{
		Log:      logger.NewLogger(100),
		Progress: prg,
	}
	r, err := c.Compress(data, params)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(prg.begin), 3)
	test.ExpectEquality(t, len(prg.end), 3)
	test.ExpectSuccess(t, prg.parsed >= 3)
	test.ExpectEquality(t, prg.best, r.PassSizes[r.BestPass-1])

	w := &strings.Builder{}
	test.ExpectSuccess(t, c.Log.Write(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "shrinkler: safety margin"))
}

func TestDecompressErrors(t *testing.T) {
	_, err := shrinkler.Decompress([]byte{1, 2, 3}, 100)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, shrinkler.BadPackedLength))

	params, _ := shrinkler.NewParameters(1)
	data := []byte(strings.Repeat("abc", 100))
	r, err := shrinkler.Compress(data, params)
	test.DemandSuccess(t, err)

	_, err = shrinkler.Decompress(r.Packed, len(data)-1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, shrinkler.DecompressError))
}
