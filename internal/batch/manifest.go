package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one input file in the output manifest.
type ManifestEntry struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Status Status `json:"status"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Bytes  int    `json:"bytes,omitempty"`
	BLAKE3 string `json:"blake3,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing results. Output paths are
// relative to outputDir.
func WriteManifest(path, outputDir string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Input:  r.Rel,
			Status: r.Status,
			Width:  r.Width,
			Height: r.Height,
			Bytes:  r.Bytes,
			BLAKE3: r.Digest,
			Error:  r.Error,
		}
		if r.Status == Converted {
			if rel, err := filepath.Rel(outputDir, r.Output); err == nil {
				e.Output = filepath.ToSlash(rel)
			} else {
				e.Output = r.Output
			}
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
