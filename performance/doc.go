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

// Package performance contains helper functions for measuring the
// performance of the compressor.
//
// ProfileCPU() runs a function with the CPU profiler active. ProfileMem()
// writes a heap profile. The gbaic command uses both when the -profile flag
// is given in CRUNCH mode. The resulting files can be read with "go tool
// pprof".
package performance
