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

package console

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/tom42/gbaic/shrinkler"
)

// MinSafetyMargin is the smallest safety margin that does not cause a
// warning. Decompressors read the packed stream one 32 bit word at a time.
const MinSafetyMargin = 4

var (
	warning = color.New(color.FgYellow)
	failure = color.New(color.FgRed, color.Bold)
)

// Summary writes the statistics of a compression.
func Summary(output io.Writer, r *shrinkler.Result) {
	if r.SafetyMargin < MinSafetyMargin {
		warning.Fprintf(output, "Minimum safety margin for overlapped decrunching: %d\n\n", r.SafetyMargin)
	} else {
		fmt.Fprintf(output, "Minimum safety margin for overlapped decrunching: %d\n\n", r.SafetyMargin)
	}

	fmt.Fprintf(output, "References considered:%8d\n", r.EdgesConsidered)
	fmt.Fprintf(output, "References discarded:%9d\n\n", r.EdgesDiscarded)
}

// FinalSize writes the size of the packed data and how it compares to the
// original size.
func FinalSize(output io.Writer, r *shrinkler.Result) {
	fmt.Fprintf(output, "Final file size: %d (%s)", len(r.Packed), humanize.IBytes(uint64(len(r.Packed))))
	if r.OriginalSize > 0 {
		fmt.Fprintf(output, ", %.1f%% of %s", float64(len(r.Packed))*100/float64(r.OriginalSize),
			humanize.IBytes(uint64(r.OriginalSize)))
	}
	fmt.Fprint(output, "\n\n")

	if r.ReferencesExceeded() {
		warning.Fprint(output, "Note: compression may benefit from a larger reference buffer (-r option).\n\n")
	}
}

// Error writes an error that ended a mode.
func Error(output io.Writer, mode string, err error) {
	if mode == "" {
		fmt.Fprintf(output, "%s error: %v\n", failure.Sprint("*"), err)
		return
	}
	fmt.Fprintf(output, "%s error in %s mode: %v\n", failure.Sprint("*"), mode, err)
}
