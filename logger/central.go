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

package logger

import "io"

const maxCentral = 256

var central *Logger

func init() {
	central = NewLogger(maxCentral)
}

// Central returns the central logger so that it can be handed to packages
// that accept a *Logger.
func Central() *Logger {
	return central
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) bool {
	return central.Write(output)
}

// Tail writes the most recent entries of the central logger to the io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries of the central logger to the io.Writer as they
// arrive.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
