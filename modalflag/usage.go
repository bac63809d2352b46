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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// usage collects the output of the flag package so that it can be extended
// with the list of modes before it is printed.
type usage struct {
	buffer strings.Builder
}

func (u *usage) Write(p []byte) (n int, err error) {
	return u.buffer.Write(p)
}

func (u *usage) write(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := u.buffer.String()
	lines := strings.Split(s, "\n")

	if s == "Usage:\n" && len(subModes) == 0 && additionalHelp == "" {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s mode\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if path != "" {
		fmt.Fprintf(output, "%s for %s mode:\n", strings.TrimSuffix(lines[0], ":"), path)
	} else {
		fmt.Fprintln(output, lines[0])
	}

	// flags as printed by the flag package
	flags := strings.Join(lines[1:], "\n")
	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
