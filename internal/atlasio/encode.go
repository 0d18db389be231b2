package atlasio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Encode writes img to w in format f. WebP output is always lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	default:
		err = fmt.Errorf("%s output is not supported", f)
	}
	if err != nil {
		return &EncodeError{Dest: memory, Err: err}
	}
	return nil
}

// EncodeBytes encodes img into memory.
func EncodeBytes(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes img completely before touching path, then writes it with
// WriteBytes. A failed encode leaves nothing on disk.
func WriteFile(path string, img image.Image, f Format) error {
	data, err := EncodeBytes(img, f)
	if err != nil {
		var ee *EncodeError
		if errors.As(err, &ee) {
			ee.Dest = path
		}
		return err
	}
	return WriteBytes(path, data)
}

// WriteBytes replaces path with data via a temporary file in the same directory,
// so readers never observe a partially written atlas.
func WriteBytes(path string, data []byte) error {
	if err := writeAtomic(path, data); err != nil {
		return &EncodeError{Dest: path, Err: err}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0644); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
