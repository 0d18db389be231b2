package atlasio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a raster encoding the adapter can read. PNG, WebP and TGA can
// also be written.
type Format int

const (
	PNG Format = iota
	WebP
	TGA
	BMP
	GIF
	JPEG
)

var formatNames = map[Format]string{
	PNG:  "png",
	WebP: "webp",
	TGA:  "tga",
	BMP:  "bmp",
	GIF:  "gif",
	JPEG: "jpeg",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + f.String() }

// Writable reports whether the adapter can encode f without losing alpha.
func (f Format) Writable() bool {
	return f == PNG || f == WebP || f == TGA
}

// ParseFormat maps a name such as "png" or ".webp" to a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	switch name {
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	case "tga", "targa":
		return TGA, nil
	case "bmp":
		return BMP, nil
	case "gif":
		return GIF, nil
	case "jpeg", "jpg":
		return JPEG, nil
	}
	return 0, fmt.Errorf("atlasio: unknown format %q", s)
}

// FormatFromPath picks a format from the file extension, falling back to PNG.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return PNG
	}
	return f
}
