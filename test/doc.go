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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure and let the test continue. The Demand
// functions stop the test immediately and should be used when later parts of
// the test depend on the value being correct. For example, testing that the
// lengths of two slices are equal before iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. For a bool success is true and for an error success is
// nil. It is worth noting that the untyped nil is considered a success too,
// because of how errors usually work.
//
// ExpectBytes() compares byte slices and reports the difference between them
// rather than dumping both slices in full.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The Compare() function can then be used to test for
// equality.
package test
