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

// Package lz is the LZ layer of the cruncher. It defines the symbol stream
// that is coded with the range coder in the coder package, and it provides
// the tools that search for a cheap stream: a MatchFinder, an EdgeFactory
// which bounds the number of candidate references kept in memory, and a
// Parser which finds the cheapest sequence of literals and references
// under a coder.CostModel.
//
// The symbol stream is a sequence of literals and references, terminated
// by a reference with offset zero. Each symbol starts with a kind decision.
// The kind context depends on the parity of the output position and on
// whether the previous symbol was a reference. Literals are coded as eight
// decisions down a binary tree of contexts, one tree per parity.
//
// A reference that follows a literal may reuse the offset of the most
// recent reference. Whether it does is coded with a single decision. All
// other offsets and all lengths are coded as numbers, in an adaptive
// variant of Elias gamma coding.
//
// Decoder reads a stream back and hands the symbols to a Receiver.
// Verifier is a Receiver which checks a stream against the data it was
// made from.
package lz
