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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/tom42/gbaic/curated"
)

// Sentinal error for the performance package.
const ProfileError = "profile error: %v"

// ProfileCPU runs the supplied function with CPU profiling enabled. The
// profile is written to outFile. Any error returned by run() is returned
// as is.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile to outFile. A garbage collection is forced
// first so that the profile is up to date.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	return nil
}
