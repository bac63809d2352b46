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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/tom42/gbaic/console"
	"github.com/tom42/gbaic/curated"
	"github.com/tom42/gbaic/flatten"
	"github.com/tom42/gbaic/logger"
	"github.com/tom42/gbaic/modalflag"
	"github.com/tom42/gbaic/performance"
	"github.com/tom42/gbaic/shrinkler"
	"github.com/tom42/gbaic/statsview"
	"github.com/tom42/gbaic/version"
)

// exit values
const (
	exitArgs = 10
	exitMode = 20
)

// error patterns for the main program
const (
	writeError = "cannot write %s: %v"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("CRUNCH", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		console.Error(output, "", err)
		return exitArgs
	}

	switch md.Mode() {
	case "CRUNCH":
		err = crunch(md)

	case "INFO":
		err = info(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		console.Error(output, md.String(), err)
		return exitMode
	}

	return 0
}

func crunch(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "", "output file (default is the input file with the .pak extension)")
	preset := md.AddInt("p", shrinkler.DefaultPreset,
		fmt.Sprintf("compression preset (%d to %d)", shrinkler.MinPreset, shrinkler.MaxPreset))
	iterations := md.AddInt("i", 0, "number of compression passes")
	lengthMargin := md.AddInt("l", 0, "number of shorter match lengths considered")
	sameLength := md.AddInt("s", 0, "number of unimproved matches before giving up on a position")
	effort := md.AddInt("e", 0, "number of matches examined for each position")
	skipLength := md.AddInt("k", 0, "matches at least this long are taken immediately")
	references := md.AddInt("r", shrinkler.DefaultReferences, "number of reference edges kept in memory")
	binFile := md.AddString("bin", "", "also write the flattened image to file")
	progress := md.AddBool("progress", true, "show compression progress")
	verbose := md.AddBool("v", false, "echo log to stdout")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("The -i -l -s -e -k and -r flags override the corresponding preset value.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *verbose {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ELF file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	params, err := shrinkler.NewParameters(*preset)
	if err != nil {
		return err
	}

	// only flags given on the command line override the preset
	md.Visit(func(flag string) {
		switch flag {
		case "i":
			params.Iterations = *iterations
		case "l":
			params.LengthMargin = *lengthMargin
		case "s":
			params.SameLength = *sameLength
		case "e":
			params.Effort = *effort
		case "k":
			params.SkipLength = *skipLength
		case "r":
			params.References = *references
		}
	})

	if err := params.Validate(); err != nil {
		return err
	}

	inFile := md.GetArg(0)
	if *outFile == "" {
		*outFile = packedFilename(inFile)
	}

	run := func() error {
		return crunchFile(md.Output, inFile, *outFile, *binFile, params, *progress)
	}

	if *profile {
		err = performance.ProfileCPU("crunch.cpu.profile", run)
		if err != nil {
			return err
		}
		return performance.ProfileMem("crunch.mem.profile")
	}

	return run()
}

// packedFilename returns the input filename with the extension replaced by
// .pak
func packedFilename(inFile string) string {
	return strings.TrimSuffix(inFile, filepath.Ext(inFile)) + ".pak"
}

func crunchFile(output io.Writer, inFile string, outFile string, binFile string, params shrinkler.Parameters, progress bool) error {
	img, err := flatten.FlattenFile(inFile, logger.Central())
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "gbaic", "image digest: %016x", xxhash.Sum64(img.Data))

	if binFile != "" {
		err = os.WriteFile(binFile, img.Data, 0o644)
		if err != nil {
			return curated.Errorf(writeError, binFile, err)
		}
	}

	fmt.Fprintf(output, "Compressing %s (%s)...\n\n", inFile, humanize.IBytes(uint64(len(img.Data))))

	c := shrinkler.Compressor{
		Log:      logger.Central(),
		Progress: console.NewProgress(output, len(img.Data), progress),
	}

	r, err := c.Compress(img.Data, params)
	if err != nil {
		return err
	}
	console.Summary(output, r)

	fmt.Fprintf(output, "Saving file %s...\n\n", outFile)
	err = os.WriteFile(outFile, r.Packed, 0o644)
	if err != nil {
		return curated.Errorf(writeError, outFile, err)
	}
	logger.Logf(logger.Allow, "gbaic", "packed digest: %016x", xxhash.Sum64(r.Packed))

	console.FinalSize(output, r)

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	memvizFile := md.AddString("memviz", "", "write graph of the segment table to file")
	verbose := md.AddBool("v", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *verbose {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ELF file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	img, err := flatten.FlattenFile(md.GetArg(0), logger.Central())
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "Entry:        %#x\n", img.Entry)
	fmt.Fprintf(md.Output, "Load address: %#x\n", img.LoadAddress)
	fmt.Fprintf(md.Output, "Image size:   %d (%s)\n", len(img.Data), humanize.IBytes(uint64(len(img.Data))))
	fmt.Fprintf(md.Output, "Digest:       %016x\n\n", xxhash.Sum64(img.Data))
	flatten.WriteProgramHeaders(md.Output, img.Segments)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf(writeError, *memvizFile, err)
		}

		// memviz.Map() does not report write errors. the buffered writer
		// keeps the first one and returns it from Flush()
		w := bufio.NewWriter(f)
		memviz.Map(w, &img.Segments)
		err = w.Flush()
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return curated.Errorf(writeError, *memvizFile, err)
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.String())

	return nil
}
