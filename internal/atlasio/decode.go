// Package atlasio reads and writes skin atlases at the system boundary.
//
// Decoded atlases are always *image.NRGBA with straight (non-premultiplied) alpha and
// an origin of (0,0); no colour management is applied.
package atlasio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// signatures maps leading bytes to formats. WebP is matched separately
// because its magic has a gap, and TGA has no signature at all.
var signatures = []struct {
	magic  string
	format Format
}{
	{string(pngMagic), PNG},
	{"GIF87a", GIF},
	{"GIF89a", GIF},
	{"\xff\xd8\xff", JPEG},
	{"BM", BMP},
}

// Dispatch is explicit rather than through image.Decode: the tga package
// registers an empty magic string, which matches every input and shadows any
// format registered after it.
var decoders = map[Format]func(io.Reader) (image.Image, error){
	PNG:  png.Decode,
	WebP: nativewebp.DecodeIgnoreAlphaFlag,
	TGA:  tga.Decode,
	BMP:  bmp.Decode,
	GIF:  gif.Decode,
	JPEG: jpeg.Decode,
}

// Sniff detects the encoding of data from its leading bytes. TGA carries no
// signature, so it is the fallback.
func Sniff(data []byte) Format {
	f, _ := sniff(data)
	return f
}

func sniff(data []byte) (Format, bool) {
	if len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return WebP, true
	}
	for _, s := range signatures {
		if bytes.HasPrefix(data, []byte(s.magic)) {
			return s.format, true
		}
	}
	return TGA, false
}

// Decode reads an entire atlas from r.
func Decode(r io.Reader) (*image.NRGBA, Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, &DecodeError{Source: memory, Err: err}
	}
	return decode(memory, data)
}

// DecodeBytes decodes an in-memory atlas.
func DecodeBytes(data []byte) (*image.NRGBA, Format, error) {
	return decode(memory, data)
}

// DecodeFile reads and decodes the atlas at path.
func DecodeFile(path string) (*image.NRGBA, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &DecodeError{Source: path, Err: err}
	}
	return decode(path, data)
}

func decode(source string, data []byte) (*image.NRGBA, Format, error) {
	if len(data) == 0 {
		return nil, 0, &DecodeError{Source: source, Err: errors.New("empty input")}
	}

	f, known := sniff(data)
	img, err := decoders[f](bytes.NewReader(data))
	if err != nil {
		if !known {
			err = fmt.Errorf("%w: no PNG, WebP, GIF, JPEG or BMP signature and not valid TGA (%v)",
				image.ErrFormat, err)
		}
		return nil, f, &DecodeError{Source: source, Err: err}
	}
	return toNRGBA(img), f, nil
}

// toNRGBA converts any image to NRGBA anchored at (0,0). NRGBA and paletted
// sources are copied exactly; premultiplied sources are un-premultiplied.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(src)
}
