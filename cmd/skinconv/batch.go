package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"mc-skin-converter/internal/batch"
	"mc-skin-converter/internal/config"
	"mc-skin-converter/internal/logx"
)

const manifestName = "manifest.json"

func (a *app) batch(args []string) int {
	fs := a.flagSet("batch", "[flags]")
	configFile := fs.String("config", "", "path to a .json or .toml config file")
	inputDir := fs.String("input", "", "directory containing skins")
	outputDir := fs.String("output", "", "output directory (default: <input>/converted)")
	pattern := fs.String("pattern", "", "glob matched against file names (default: *.png)")
	recursive := fs.Bool("r", false, "descend into subdirectories")
	suffix := fs.String("suffix", "", "appended to output file names (default: _double)")
	format := fs.String("format", "", "output format: png, webp or tga (default: png)")
	workers := fs.Int("workers", 0, "number of worker goroutines (default: NumCPU)")
	logLevel := fs.String("log", "", "log level: debug, info, warn, error (default: info)")
	color := fs.String("color", "", "colored logs: auto, always, never (default: auto)")
	noManifest := fs.Bool("no-manifest", false, "do not write "+manifestName)
	if code, ok := parse(fs, args); !ok {
		return code
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return exitUsage
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
			return exitFailure
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Pattern:   *pattern,
		Recursive: *recursive,
		Suffix:    *suffix,
		Format:    *format,
		Workers:   *workers,
		LogLevel:  *logLevel,
		Color:     *color,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
		return exitUsage
	}

	log, err := a.logger(cfg)
	if err != nil {
		fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
		return exitUsage
	}

	bcfg := batch.Config{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
		Suffix:    cfg.Suffix,
		Format:    cfg.OutputFormat(),
		Workers:   cfg.Workers,
		Log:       log,
	}

	jobs, err := batch.Plan(bcfg)
	if err != nil {
		log.Error().Err(err).Msg("planning failed")
		return exitFailure
	}
	if len(jobs) == 0 {
		log.Warn().Str("input", cfg.InputDir).Str("pattern", cfg.Pattern).Msg("no matching files")
		return exitOK
	}

	log.Info().
		Int("files", len(jobs)).
		Int("workers", cfg.Workers).
		Str("format", bcfg.Format.String()).
		Str("output", cfg.OutputDir).
		Msg("converting")

	start := time.Now()
	results := batch.Run(bcfg, jobs)
	sum := batch.Summarize(results)

	log.Info().
		Int("converted", sum.Converted).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Msg("done")

	for _, r := range results {
		if r.Status == batch.Failed {
			log.Warn().Str("file", r.Rel).Msg(r.Error)
		}
	}

	if !*noManifest {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			log.Error().Err(err).Msg("cannot create output directory")
			return exitFailure
		}
		path := filepath.Join(cfg.OutputDir, manifestName)
		if err := batch.WriteManifest(path, cfg.OutputDir, results); err != nil {
			log.Error().Err(err).Msg("cannot write manifest")
			return exitFailure
		}
		log.Info().Str("path", path).Msg("manifest written")
	}

	if sum.Failed > 0 {
		return exitFailure
	}
	return exitOK
}

func (a *app) logger(cfg config.Config) (zerolog.Logger, error) {
	mode, err := logx.ParseColorMode(cfg.Color)
	if err != nil {
		return zerolog.Nop(), err
	}
	if f, ok := a.stderr.(*os.File); ok {
		return logx.New(f, cfg.LogLevel, mode)
	}
	lvl, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	return logx.NewWriter(a.stderr, lvl, mode != logx.ColorOn), nil
}
