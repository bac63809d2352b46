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

// Package console writes the output of the gbaic command that is intended
// for people rather than programs. That is the progress table printed while
// compressing, the summary printed afterwards and error messages.
//
// Progress is an implementation of the shrinkler.Progress interface. When
// the output is a terminal a spinner shows how far the parser has got
// through the current pass. Otherwise only the completed table is printed.
//
// Colour is used for warnings and errors. It is disabled automatically when
// the output is not a terminal.
package console
