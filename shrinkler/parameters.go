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

package shrinkler

import (
	"fmt"

	"github.com/tom42/gbaic/curated"
)

// The range of presets accepted by NewParameters().
const (
	MinPreset     = 1
	MaxPreset     = 9
	DefaultPreset = 2
)

// DefaultReferences is the number of reference edges kept in memory by all
// presets.
const DefaultReferences = 100000

// MinReferences is the smallest number of reference edges accepted.
const MinReferences = 1000

// Parameters control how hard the compressor works.
type Parameters struct {
	// number of passes
	Iterations int

	// number of shorter lengths considered for each match
	LengthMargin int

	// number of candidates in a row that can fail to improve a match
	// before the match finder gives up on a position
	SameLength int

	// number of candidates examined by the match finder for each position
	Effort int

	// matches at least this long are taken without considering anything
	// else
	SkipLength int

	// the number of reference edges kept in memory
	References int
}

// NewParameters returns the parameters for the preset. Higher presets
// compress better and more slowly.
func NewParameters(preset int) (Parameters, error) {
	if preset < MinPreset || preset > MaxPreset {
		return Parameters{}, curated.Errorf(ParameterError, curated.Errorf(InvalidPreset, MinPreset, MaxPreset, preset))
	}
	return Parameters{
		Iterations:   preset,
		LengthMargin: preset,
		SameLength:   preset * 10,
		Effort:       preset * 100,
		SkipLength:   preset * 1000,
		References:   DefaultReferences,
	}, nil
}

// Validate returns an error if any parameter is out of range.
func (p Parameters) Validate() error {
	check := []struct {
		name  string
		value int
		min   int
	}{
		{name: "iterations", value: p.Iterations, min: 1},
		{name: "length margin", value: p.LengthMargin, min: 0},
		{name: "same length", value: p.SameLength, min: 1},
		{name: "effort", value: p.Effort, min: 0},
		{name: "skip length", value: p.SkipLength, min: 2},
		{name: "references", value: p.References, min: MinReferences},
	}
	for _, c := range check {
		if c.value < c.min {
			return curated.Errorf(ParameterError, curated.Errorf(InvalidParameter, c.name, c.min, c.value))
		}
	}
	return nil
}

func (p Parameters) String() string {
	return fmt.Sprintf("iterations=%d length-margin=%d same-length=%d effort=%d skip-length=%d references=%d",
		p.Iterations, p.LengthMargin, p.SameLength, p.Effort, p.SkipLength, p.References)
}
