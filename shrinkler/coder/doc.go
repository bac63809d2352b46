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

// Package coder implements the adaptive binary range coder used by the LZ
// symbol stream, together with the two models used while searching for a
// good parse: SizeMeasurer, which predicts the exact output size of the
// range coder, and CountingCoder, which turns symbol frequencies into costs.
//
// All sizes and costs are fixed point values with BitPrecision fractional
// bits. A cost of 1<<BitPrecision is one bit.
//
// Each decision is coded in a context. A context has an adaptive 16 bit
// probability that the next bit coded in it is a one. The probability
// starts at one half and moves towards the coded bit by a fixed fraction
// after every decision. Encoder, decoder and SizeMeasurer share this
// adaptation rule so the three always agree on the model.
package coder
