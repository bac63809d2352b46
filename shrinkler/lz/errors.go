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

package lz

// Sentinal errors for the lz package.
const (
	DecodeError      = "decode error: %v"
	NumberTooLarge   = "number too large at position %d"
	InvalidReference = "invalid reference (offset %d, length %d) at position %d"
	Mismatch         = "mismatch at position %d"
	TooLong          = "decoded data is longer than %d bytes"
)
