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

package test

import (
	"strings"
)

// CompareWriter captures the output of the command line tool and its
// loggers so it can be checked against expected text. The zero value is
// ready to use.
type CompareWriter struct {
	output strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.output.Write(p)
}

// WriteString implements the io.StringWriter interface.
func (tw *CompareWriter) WriteString(s string) (int, error) {
	return tw.output.WriteString(s)
}

// Clear discards everything written so far.
func (tw *CompareWriter) Clear() {
	tw.output.Reset()
}

// Compare returns true if the output so far is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.output.String() == s
}

// Contains returns true if any line of output is exactly s. The line ending
// is not part of the line.
func (tw *CompareWriter) Contains(s string) bool {
	for _, l := range tw.Lines() {
		if l == s {
			return true
		}
	}
	return false
}

// Lines returns the complete lines of output. An unterminated last line is
// not included.
func (tw *CompareWriter) Lines() []string {
	l := strings.SplitAfter(tw.output.String(), "\n")
	n := 0
	for _, s := range l {
		if strings.HasSuffix(s, "\n") {
			l[n] = strings.TrimSuffix(s, "\n")
			n++
		}
	}
	return l[:n]
}

// String implements the fmt.Stringer interface.
func (tw *CompareWriter) String() string {
	return tw.output.String()
}
