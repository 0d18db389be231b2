// Package skinconv converts legacy single-layer Minecraft skins (width twice the
// height) to the square double-layer atlas layout.
//
// The conversion copies the input into the top half of a square canvas and
// fills the left arm and left leg from horizontally mirrored copies of the
// right limbs. HD skins are supported at any width; region coordinates scale
// with width/64. Nothing in this package logs.
package skinconv

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"mc-skin-converter/internal/atlasio"
	"mc-skin-converter/internal/skin"
)

// Format selects the encoding of converted atlases.
type Format = atlasio.Format

const (
	PNG  = atlasio.PNG
	WebP = atlasio.WebP
	TGA  = atlasio.TGA
	BMP  = atlasio.BMP  // decode only
	GIF  = atlasio.GIF  // decode only
	JPEG = atlasio.JPEG // decode only
)

// Error kinds. Match with errors.Is; inspect details with errors.As on the
// corresponding types.
var (
	ErrInvalidLayout = skin.ErrInvalidLayout
	ErrDecode        = atlasio.ErrDecode
	ErrEncode        = atlasio.ErrEncode
)

type (
	LayoutError = skin.LayoutError
	DecodeError = atlasio.DecodeError
	EncodeError = atlasio.EncodeError
)

// ParseFormat maps a name such as "png" or ".webp" to a Format.
func ParseFormat(s string) (Format, error) { return atlasio.ParseFormat(s) }

// FormatFromPath picks a format from the file extension, falling back to PNG.
func FormatFromPath(path string) Format { return atlasio.FormatFromPath(path) }

// Convert returns the double-layer atlas for a single-layer skin. img is not
// modified. Images that are not NRGBA are converted to straight alpha first.
func Convert(img image.Image) (*image.NRGBA, error) {
	if img == nil {
		return nil, &LayoutError{}
	}
	if err := skin.Validate(img); err != nil {
		return nil, err
	}
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = imaging.Clone(img)
	}
	return skin.Convert(src)
}

// ConvertBytes decodes an encoded skin (PNG, WebP, TGA, BMP, GIF or JPEG), converts it
// and returns the atlas encoded as out.
func ConvertBytes(data []byte, out Format) ([]byte, error) {
	img, _, err := atlasio.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return convertEncode(img, out)
}

// ConvertPath reads and converts the skin at path, returning the encoded atlas.
func ConvertPath(path string, out Format) ([]byte, error) {
	img, _, err := atlasio.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return convertEncode(img, out)
}

// ConvertFile converts inPath and writes the atlas to outPath. The output
// format follows outPath's extension, PNG when it is not recognized. On
// failure no partial output file is left behind.
func ConvertFile(inPath, outPath string) error {
	return ConvertFileAs(inPath, outPath, atlasio.FormatFromPath(outPath))
}

// ConvertFileAs is ConvertFile with an explicit output format.
func ConvertFileAs(inPath, outPath string, out Format) error {
	data, err := ConvertPath(inPath, out)
	if err != nil {
		var ee *EncodeError
		if errors.As(err, &ee) {
			ee.Dest = outPath
		}
		return err
	}
	return atlasio.WriteBytes(outPath, data)
}

func convertEncode(img *image.NRGBA, out Format) ([]byte, error) {
	atlas, err := skin.Convert(img)
	if err != nil {
		return nil, err
	}
	return atlasio.EncodeBytes(atlas, out)
}
