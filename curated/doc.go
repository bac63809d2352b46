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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is kept with the error
// and is what identifies the error, rather than the formatted message.
//
// Packages that want to expose categories of error do so by exporting the
// pattern as a const string. For example, the flatten package:
//
//	const FormatError = "format error: %v"
//
//	return curated.Errorf(FormatError, curated.Errorf(SegmentOverlap, ...))
//
// The caller can then check the category with Is() and look for the more
// specific pattern anywhere in the chain with Has():
//
//	if curated.Is(err, flatten.FormatError) {
//		fmt.Println("not something we can flatten")
//	}
//
//	if curated.Has(err, flatten.SegmentOverlap) {
//		fmt.Println("overlapping segments")
//	}
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference as 'expected' and 'unexpected' errors.
//
// The Error() function normalises the error chain. Chains are composed of
// parts separated by the sub-string ': ' and adjacent parts that are identical
// are removed. This means that a function can wrap an error with context
// without worrying whether the callee has already added the same context.
//
//	func load(path string) error {
//		err := open(path)
//		if err != nil {
//			return curated.Errorf("%s: %v", path, err)
//		}
//		return nil
//	}
//
// If open() has also prefixed the error with the path the message will still
// contain the path only once.
//
// Values that are plain (uncurated) errors are available through the Unwrap()
// function, so the errors package in the standard library can be used to find
// an underlying *os.PathError for example.
package curated
