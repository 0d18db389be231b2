package batch

import (
	"encoding/hex"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/zeebo/blake3"

	"mc-skin-converter/internal/atlasio"
)

func writeSkin(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w && i < h; i++ {
		img.SetNRGBA(i, i, color.NRGBA{R: 255, A: 255})
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := atlasio.WriteFile(path, img, atlasio.PNG); err != nil {
		t.Fatal(err)
	}
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeSkin(t, filepath.Join(dir, "steve.png"), 64, 32)
	writeSkin(t, filepath.Join(dir, "hd.png"), 128, 64)
	writeSkin(t, filepath.Join(dir, "modern.png"), 64, 64)
	writeSkin(t, filepath.Join(dir, "sub", "alex.png"), 64, 32)
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func testConfig(dir string) Config {
	return Config{
		InputDir:         dir,
		OutputDir:        filepath.Join(dir, "converted"),
		Pattern:          "*.png",
		Suffix:           "_double",
		Format:           atlasio.PNG,
		Workers:          2,
		Log:              zerolog.Nop(),
		ProgressInterval: time.Millisecond,
	}
}

func rels(jobs []Job) []string {
	var out []string
	for _, j := range jobs {
		out = append(out, j.Rel)
	}
	sort.Strings(out)
	return out
}

func TestPlan(t *testing.T) {
	dir := fixture(t)
	cfg := testConfig(dir)

	jobs, err := Plan(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got := rels(jobs)
	want := []string{"broken.png", "hd.png", "modern.png", "steve.png"}
	if len(got) != len(want) {
		t.Fatalf("jobs = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("jobs = %v, want %v", got, want)
		}
	}

	for _, j := range jobs {
		if j.Rel == "steve.png" {
			if want := filepath.Join(cfg.OutputDir, "steve_double.png"); j.Output != want {
				t.Errorf("output = %q, want %q", j.Output, want)
			}
		}
	}
}

func TestPlanRecursiveSkipsOutput(t *testing.T) {
	dir := fixture(t)
	cfg := testConfig(dir)
	cfg.Recursive = true
	writeSkin(t, filepath.Join(cfg.OutputDir, "old_double.png"), 64, 64)

	jobs, err := Plan(cfg)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, j := range jobs {
		if j.Rel == "converted/old_double.png" {
			t.Error("output directory was planned")
		}
		if j.Rel == "sub/alex.png" {
			found = true
			if want := filepath.Join(cfg.OutputDir, "sub", "alex_double.png"); j.Output != want {
				t.Errorf("output = %q, want %q", j.Output, want)
			}
		}
	}
	if !found {
		t.Error("recursive plan missed sub/alex.png")
	}
}

func TestPlanBadPattern(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Pattern = "[unterminated"
	if _, err := Plan(cfg); err == nil {
		t.Error("bad pattern accepted")
	}
}

func TestRun(t *testing.T) {
	dir := fixture(t)
	cfg := testConfig(dir)
	jobs, err := Plan(cfg)
	if err != nil {
		t.Fatal(err)
	}

	results := Run(cfg, jobs)
	if len(results) != len(jobs) {
		t.Fatalf("%d results for %d jobs", len(results), len(jobs))
	}

	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Rel] = r
	}

	if s := Summarize(results); s != (Summary{Converted: 2, Skipped: 1, Failed: 1}) {
		t.Errorf("summary = %+v", s)
	}
	if r := byName["modern.png"]; r.Status != Skipped || r.Error == "" {
		t.Errorf("modern.png: %+v", r)
	}
	if r := byName["broken.png"]; r.Status != Failed {
		t.Errorf("broken.png: %+v", r)
	}

	for name, side := range map[string]int{"steve.png": 64, "hd.png": 128} {
		r := byName[name]
		if r.Status != Converted {
			t.Fatalf("%s: %+v", name, r)
		}
		data, err := os.ReadFile(r.Output)
		if err != nil {
			t.Fatal(err)
		}
		sum := blake3.Sum256(data)
		if r.Digest != hex.EncodeToString(sum[:]) || r.Bytes != len(data) {
			t.Errorf("%s: digest/size mismatch", name)
		}
		img, _, err := atlasio.DecodeBytes(data)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != side || b.Dy() != side {
			t.Errorf("%s: output %v, want %dx%d", name, b, side, side)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "modern_double.png")); err == nil {
		t.Error("skipped input produced output")
	}
}

func TestWriteManifest(t *testing.T) {
	out := t.TempDir()
	results := []Result{
		{Job: Job{Rel: "a.png", Output: filepath.Join(out, "a_double.png")}, Status: Converted,
			Width: 64, Height: 32, Bytes: 10, Digest: "ab"},
		{Job: Job{Rel: "b.png", Output: filepath.Join(out, "b_double.png")}, Status: Skipped, Error: "square"},
	}
	path := filepath.Join(out, "manifest.json")
	if err := WriteManifest(path, out, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []struct {
		Input  string `json:"input"`
		Output string `json:"output"`
		Status string `json:"status"`
		BLAKE3 string `json:"blake3"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("%d entries", len(entries))
	}
	if e := entries[0]; e.Output != "a_double.png" || e.Status != "converted" || e.BLAKE3 != "ab" {
		t.Errorf("entry 0 = %+v", e)
	}
	if e := entries[1]; e.Output != "" || e.Status != "skipped" || e.Error != "square" {
		t.Errorf("entry 1 = %+v", e)
	}
}
