package batch

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
	"github.com/zeebo/blake3"

	"mc-skin-converter/internal/atlasio"
	"mc-skin-converter/internal/skin"
)

// Config holds all shared settings for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Pattern   string // glob matched against file base names
	Recursive bool
	Suffix    string
	Format    atlasio.Format
	Workers   int
	Log       zerolog.Logger

	// ProgressInterval is how often progress is logged; zero means every 2s.
	ProgressInterval time.Duration
}

// Job is one input file and the path its conversion is written to.
type Job struct {
	Rel    string // input path relative to InputDir, slash separated
	Input  string
	Output string
}

// Status is the outcome of one job.
type Status int

const (
	Converted Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Converted:
		return "converted"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result holds the outcome of processing one job.
type Result struct {
	Job
	Status Status
	Width  int
	Height int
	Bytes  int
	Digest string // BLAKE3-256 of the written file, hex
	Error  string
}

// Plan walks InputDir and returns a job for every file whose base name matches
// Pattern. OutputDir is never descended into.
func Plan(cfg Config) ([]Job, error) {
	g, err := glob.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("batch: pattern %q: %w", cfg.Pattern, err)
	}

	outAbs, _ := filepath.Abs(cfg.OutputDir)
	ext := cfg.Format.Ext()

	var jobs []Job
	err = filepath.WalkDir(cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == cfg.InputDir {
				return nil
			}
			if abs, _ := filepath.Abs(path); abs == outAbs || !cfg.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !g.Match(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(cfg.InputDir, path)
		if err != nil {
			return err
		}
		stem := strings.TrimSuffix(rel, filepath.Ext(rel))
		jobs = append(jobs, Job{
			Rel:    filepath.ToSlash(rel),
			Input:  path,
			Output: filepath.Join(cfg.OutputDir, stem+cfg.Suffix+ext),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: walk %s: %w", cfg.InputDir, err)
	}
	return jobs, nil
}

// Run processes all jobs using a worker pool. Results are in job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					cfg.Log.Info().Int64("done", p).Int("total", total).
						Str("rate", fmt.Sprintf("%.1f/s", rate)).Msg("progress")
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Job: job}
	log := cfg.Log.With().Str("file", job.Rel).Logger()

	img, _, err := atlasio.DecodeFile(job.Input)
	if err != nil {
		log.Error().Err(err).Msg("decode failed")
		res.Status = Failed
		res.Error = err.Error()
		return res
	}
	b := img.Bounds()
	res.Width, res.Height = b.Dx(), b.Dy()

	out, err := skin.Convert(img)
	if errors.Is(err, skin.ErrInvalidLayout) {
		log.Debug().Str("layout", skin.Layout(img).String()).Msg("not a single-layer skin, skipped")
		res.Status = Skipped
		res.Error = err.Error()
		return res
	}
	if err != nil {
		log.Error().Err(err).Msg("conversion failed")
		res.Status = Failed
		res.Error = err.Error()
		return res
	}

	data, err := atlasio.EncodeBytes(out, cfg.Format)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(job.Output), 0755)
	}
	if err == nil {
		err = atlasio.WriteBytes(job.Output, data)
	}
	if err != nil {
		log.Error().Err(err).Msg("write failed")
		res.Status = Failed
		res.Error = err.Error()
		return res
	}

	sum := blake3.Sum256(data)
	res.Status = Converted
	res.Bytes = len(data)
	res.Digest = hex.EncodeToString(sum[:])
	log.Debug().Str("output", job.Output).Msg("converted")
	return res
}

// Summary counts results by status.
type Summary struct {
	Converted, Skipped, Failed int
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case Converted:
			s.Converted++
		case Skipped:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}
