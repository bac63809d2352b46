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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes handles the command line arguments of a program with modes. The
// Output field should be set before calling Parse() otherwise help messages
// will not be seen.
type Modes struct {
	Output io.Writer

	// the flags for the current mode. a new flagset is created for every
	// call to NewArgs() and NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// the modes that can be selected by the next call to Parse(). the first
	// entry is the default
	subModes []string

	// every mode selected so far
	path []string

	additionalHelp string
	parsed         bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode starts a new set of flags and modes. Arguments already consumed by
// Parse() will not be seen again.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp is printed after the list of flags when help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the most recent call
// to NewArgs() or NewMode(), whether or not it was successful.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// the arguments were parsed. if modes were declared then Mode() will
	// return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed to the Output writer
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	u := &usage{}
	md.flags.SetOutput(u)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			u.write(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag may belong to the default mode. the
		// arguments are left for the default mode to parse
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	// the first argument after the flags may be a mode. if it isn't then the
	// default mode is selected and the argument is left for the mode to use
	mode := md.subModes[0]
	md.argsIdx = len(md.args) - md.flags.NArg()

	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.argsIdx++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags and not the name of
// the selected mode.
func (md *Modes) RemainingArgs() []string {
	if len(md.subModes) > 0 {
		return md.args[md.argsIdx:]
	}
	return md.flags.Args()
}

// GetArg returns the numbered argument of RemainingArgs(). The empty string
// is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes declares the modes that can be selected by the next call to
// Parse(). The first mode added is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that was given on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
