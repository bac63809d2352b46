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

package shrinkler

// Sentinal errors for the shrinkler package.
const (
	ParameterError    = "parameter error: %v"
	VerificationError = "verification error: %v"
	DecompressError   = "decompress error: %v"

	InvalidPreset    = "preset must be between %d and %d (got %d)"
	InvalidParameter = "%s must be at least %d (got %d)"
	SizeMismatch     = "decoded %d bytes but expected %d"
	BadPackedLength  = "packed length (%d) is not a multiple of four"
)
