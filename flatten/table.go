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

package flatten

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteProgramHeaders writes the program header table as a text table.
func WriteProgramHeaders(w io.Writer, segs []Segment) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Type", "Offset", "VirtAddr", "PhysAddr", "FileSiz", "MemSiz", "Align", "Flg"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range segs {
		row := make([]string, 0, 8)
		for _, c := range segmentColumns(s) {
			row = append(row, fmt.Sprint(c))
		}
		table.Append(row)
	}
	table.Render()
}
