package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"mc-skin-converter/pkg/skinconv"
)

const defaultOutput = "output.png"

func (a *app) single2double(args []string) int {
	fs := a.flagSet("single2double", "[-format png|webp|tga] <input> [output]")
	format := fs.String("format", "", "output format (default: from output extension, png if unknown)")
	quiet := fs.Bool("q", false, "do not report the written file")
	if code, ok := parse(fs, args); !ok {
		return code
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return exitUsage
	}
	in := fs.Arg(0)

	f := skinconv.PNG
	if *format != "" {
		var err error
		f, err = skinconv.ParseFormat(*format)
		if err == nil && !f.Writable() {
			err = fmt.Errorf("%s cannot be used as output format", f)
		}
		if err != nil {
			fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
			return exitUsage
		}
	}

	out := defaultOutput
	switch {
	case fs.NArg() == 2:
		out = fs.Arg(1)
		if *format == "" {
			f = skinconv.FormatFromPath(out)
		}
	case *format != "":
		out = strings.TrimSuffix(defaultOutput, filepath.Ext(defaultOutput)) + f.Ext()
	}

	if err := skinconv.ConvertFileAs(in, out, f); err != nil {
		fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
		return exitFailure
	}

	if !*quiet {
		fmt.Fprintf(a.stdout, "Wrote %s\n", out)
	}
	return exitOK
}
