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

// Package statsview is an optional package that is only built when the
// statsview build tag is present.
//
// It runs a local HTTP server offering runtime statistics while gbaic is
// compressing. The underlying functionality is provided by
// "github.com/go-echarts/statsview".
//
// After launch the graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview
