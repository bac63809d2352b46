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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "gbaic"

// set with -ldflags "-X github.com/tom42/gbaic/version.number=..."
var number string

// the vcs revision. suffixed with "+dirty" if the source has been modified
// but not committed
var revision string

// "unreleased" if built from a repository without a version number. "local"
// if there is no version number and no vcs information, as happens with "go
// run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line describing the application and its version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = &debug.BuildInfo{}
	}
	version, revision = fromBuildInfo(number, info)
}

func fromBuildInfo(number string, info *debug.BuildInfo) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	revision := "no revision information"
	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number != "" {
		return number, revision
	}
	if vcs {
		return "unreleased", revision
	}
	return "local", revision
}
