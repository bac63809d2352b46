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

// Package modalflag wraps the flag package from the standard library so that
// a program can have modes, each with its own set of flags. The gbaic command
// uses it for its CRUNCH, INFO and VERSION modes.
//
// Arguments are given once with NewArgs(). Flags and modes are then declared
// and Parse() is called. After a successful Parse() the selected mode is
// returned by Mode(). Calling NewMode() starts a new set of flags for the
// selected mode, which are parsed from the arguments that follow the mode
// name:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("crunch", "info", "version")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		memviz := md.AddString("memviz", "", "write segment graph to file")
//		...
//	}
//
// The first mode given to AddSubModes() is the default. It is selected when
// the first argument after the flags is not the name of a mode. Mode names
// are not case sensitive and are always reported in upper case.
//
// The -help flag is handled automatically. Parse() prints the flags and modes
// that are available and returns ParseHelp.
//
// Visit() lists the flags that were actually given on the command line. This
// allows a flag to override another setting only when it is used.
package modalflag
