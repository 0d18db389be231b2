// Command skinconv converts legacy single-layer Minecraft skins to the
// double-layer atlas layout.
//
//	skinconv single2double <input> [output]
//	skinconv batch -input <dir> [flags]
//	skinconv regions [-width N] [-scale N] [-o map.png] [atlas]
//	skinconv inspect <file>...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type app struct {
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(a *app, args []string) int
}

var commands = []command{
	{"single2double", "convert one single-layer skin to a double-layer atlas", (*app).single2double},
	{"batch", "convert every matching skin in a directory", (*app).batch},
	{"regions", "print the mirrored region table and render a region map", (*app).regions},
	{"inspect", "report dimensions, layout and alpha statistics of images", (*app).inspect},
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.run(os.Args[1:]))
}

func (a *app) run(args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}
	name := args[0]
	if name == "-h" || name == "-help" || name == "--help" || name == "help" {
		a.usage()
		return exitOK
	}
	for _, c := range commands {
		if c.name == name {
			return c.run(a, args[1:])
		}
	}
	fmt.Fprintf(a.stderr, "skinconv: unknown command %q\n", name)
	a.usage()
	return exitUsage
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "usage: skinconv <command> [arguments]")
	fmt.Fprintln(a.stderr)
	fmt.Fprintln(a.stderr, "commands:")
	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %-14s %s\n", c.name, c.summary)
	}
}

// flagSet returns a FlagSet that reports errors instead of exiting.
func (a *app) flagSet(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: skinconv %s %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses args into fs and maps the outcome to an exit code; ok is false
// when the command should stop.
func parse(fs *flag.FlagSet, args []string) (code int, ok bool) {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK, false
	}
	if err != nil {
		return exitUsage, false
	}
	return exitOK, true
}
