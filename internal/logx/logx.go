// Package logx builds the console logger used by the command-line tools.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ColorMode selects when log output is coloured.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColorMode accepts "auto", "on"/"always" and "off"/"never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("logx: unknown color mode %q", s)
}

// New returns a console logger on f at the given level ("debug", "info", ...).
func New(f *os.File, level string, mode ColorMode) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var out io.Writer = f
	color := false
	switch mode {
	case ColorOn:
		color = true
	case ColorAuto:
		fd := f.Fd()
		color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	if color {
		out = colorable.NewColorable(f)
	}

	return NewWriter(out, lvl, !color), nil
}

// NewWriter returns a console logger on an arbitrary writer.
func NewWriter(w io.Writer, lvl zerolog.Level, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("logx: %w", err)
	}
	return lvl, nil
}
