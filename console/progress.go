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
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/tom42/gbaic/shrinkler/coder"
)

// IsTerminal returns true if the writer is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Progress prints a table with the size of the data after each compression
// pass. The first column is the original size. Sizes are in bytes.
type Progress struct {
	output io.Writer

	// nil if progress is not being animated
	spin *spinner.Spinner

	originalSize int
	passes       int
	pass         int

	// the row of sizes printed so far. when the spinner is running the row
	// is the prefix of the spinner and is only written to the output once
	// all passes are complete
	row strings.Builder
}

var ordinals = []string{"st", "nd", "rd", "th"}

// NewProgress returns a Progress that prints to the output. If animate is true
// and the output is a terminal then a spinner is shown while each pass is
// running.
func NewProgress(output io.Writer, originalSize int, animate bool) *Progress {
	p := &Progress{
		output:       output,
		originalSize: originalSize,
	}

	if animate && IsTerminal(output) {
		p.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriterFile(output.(*os.File)))
	}

	return p
}

// PassBegin implements the shrinkler.Progress interface.
func (p *Progress) PassBegin(pass int, passes int) {
	p.pass = pass
	p.passes = passes

	if pass == 1 {
		fmt.Fprint(p.output, "Original")
		for i := 1; i <= passes; i++ {
			fmt.Fprintf(p.output, "  After %d%s pass", i, ordinals[min(i, len(ordinals))-1])
		}
		fmt.Fprintln(p.output)
		p.row.Reset()
		p.write(fmt.Sprintf("%8d", p.originalSize))
	}

	if p.spin != nil {
		p.spin.Lock()
		p.spin.Prefix = p.row.String() + "  "
		p.spin.Suffix = ""
		p.spin.Unlock()
		p.spin.Start()
	}
}

// Parsed implements the shrinkler.Progress interface.
func (p *Progress) Parsed(pos int, size int) {
	if p.spin == nil || size == 0 {
		return
	}
	p.spin.Lock()
	p.spin.Suffix = fmt.Sprintf(" %.1f%%", float64(pos)*100/float64(size))
	p.spin.Unlock()
}

// PassEnd implements the shrinkler.Progress interface.
func (p *Progress) PassEnd(pass int, size int, best int) {
	if p.spin != nil {
		p.spin.Stop()
	}

	p.write(fmt.Sprintf("  %14.3f", Bytes(size)))

	if pass == p.passes {
		if p.spin != nil {
			io.WriteString(p.output, p.row.String())
		}
		fmt.Fprint(p.output, "\n\n")
	}
}

// write adds to the row. the row is written to the output immediately if there
// is no spinner
func (p *Progress) write(s string) {
	p.row.WriteString(s)
	if p.spin == nil {
		io.WriteString(p.output, s)
	}
}

// Bytes converts a fixed point bit count, as used by the coder package, to
// a number of bytes.
func Bytes(size int) float64 {
	return float64(size) / float64(8<<coder.BitPrecision)
}
