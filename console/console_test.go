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

package console_test

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/tom42/gbaic/console"
	"github.com/tom42/gbaic/shrinkler"
	"github.com/tom42/gbaic/shrinkler/coder"
	"github.com/tom42/gbaic/test"
)

func init() {
	color.NoColor = true
}

func TestNotTerminal(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectFailure(t, console.IsTerminal(tw))
}

func TestBytes(t *testing.T) {
	test.ExpectEquality(t, console.Bytes(8<<coder.BitPrecision), 1.0)
	test.ExpectEquality(t, console.Bytes(4<<coder.BitPrecision), 0.5)
	test.ExpectEquality(t, console.Bytes(0), 0.0)
}

func TestProgressTable(t *testing.T) {
	tw := &test.CompareWriter{}

	// animation is ignored because the writer is not a terminal
	p := console.NewProgress(tw, 1000, true)

	sizes := []int{500 * 8 << coder.BitPrecision, 400*8<<coder.BitPrecision + 64, 450 * 8 << coder.BitPrecision}
	best := sizes[0]
	for i, s := range sizes {
		p.PassBegin(i+1, len(sizes))
		p.Parsed(500, 1000)
		p.Parsed(1000, 1000)
		best = min(best, s)
		p.PassEnd(i+1, s, best)
	}

	test.ExpectEquality(t, tw.String(),
		"Original  After 1st pass  After 2nd pass  After 3rd pass\n"+
			"    1000         500.000         400.125         450.000\n\n")
}

func TestProgressOrdinals(t *testing.T) {
	tw := &test.CompareWriter{}
	p := console.NewProgress(tw, 10, false)
	p.PassBegin(1, 5)

	test.ExpectEquality(t, tw.String(),
		"Original  After 1st pass  After 2nd pass  After 3rd pass  After 4th pass  After 5th pass\n"+
			"      10")
}

func TestSummary(t *testing.T) {
	tw := &test.CompareWriter{}

	r := &shrinkler.Result{
		SafetyMargin:    12,
		EdgesConsidered: 1234,
		EdgesDiscarded:  56,
	}
	console.Summary(tw, r)
	test.ExpectEquality(t, tw.String(),
		"Minimum safety margin for overlapped decrunching: 12\n\n"+
			"References considered:    1234\n"+
			"References discarded:       56\n\n")

	// a small margin is a warning but the text is the same
	tw.Clear()
	r.SafetyMargin = 0
	console.Summary(tw, r)
	test.ExpectEquality(t, tw.String(),
		"Minimum safety margin for overlapped decrunching: 0\n\n"+
			"References considered:    1234\n"+
			"References discarded:       56\n\n")
}

func TestFinalSize(t *testing.T) {
	tw := &test.CompareWriter{}

	r := &shrinkler.Result{
		Packed:       make([]byte, 512),
		OriginalSize: 2048,
	}
	console.FinalSize(tw, r)
	test.ExpectEquality(t, tw.String(), "Final file size: 512 (512 B), 25.0% of 2.0 KiB\n\n")

	tw.Clear()
	r.OriginalSize = 0
	console.FinalSize(tw, r)
	test.ExpectEquality(t, tw.String(), "Final file size: 512 (512 B)\n\n")
}

func TestReferenceHint(t *testing.T) {
	tw := &test.CompareWriter{}

	// the zero value Result allows no references so any edge is too many
	r := &shrinkler.Result{
		Packed:          make([]byte, 8),
		EdgesConsidered: 1,
	}
	test.DemandSuccess(t, r.ReferencesExceeded())

	console.FinalSize(tw, r)
	test.ExpectEquality(t, tw.String(), "Final file size: 8 (8 B)\n\n"+
		"Note: compression may benefit from a larger reference buffer (-r option).\n\n")
}

func TestError(t *testing.T) {
	tw := &test.CompareWriter{}

	console.Error(tw, "CRUNCH", errors.New("no input file"))
	test.ExpectEquality(t, tw.String(), "* error in CRUNCH mode: no input file\n")

	tw.Clear()
	console.Error(tw, "", errors.New("flag provided but not defined: -x"))
	test.ExpectEquality(t, tw.String(), "* error: flag provided but not defined: -x\n")
}
