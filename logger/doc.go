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

// Package logger is the diagnostic log for gbaic. Log entries are made up of a
// tag and a detail string and are kept in memory. A Logger can also echo new
// entries to an io.Writer as they arrive, which is how the command line
// implements its verbose mode.
//
// The packages that do the real work never print anything themselves. They
// accept a *Logger as a diagnostic sink instead. A nil *Logger is valid and
// discards everything.
//
// Every call to Log() and Logf() requires a Permission. The Allow value can
// be used when logging should always happen.
//
// There is also a central logger, for use by the command line front end,
// accessed through the package level functions.
package logger
