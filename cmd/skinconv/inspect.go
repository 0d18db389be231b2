package main

import (
	"fmt"
	"image"

	"mc-skin-converter/internal/atlasio"
	"mc-skin-converter/internal/region"
	"mc-skin-converter/internal/skin"
)

type alphaStats struct {
	min, max                     uint8
	opaque, transparent, partial int
	hidden                       int // fully transparent pixels that still carry colour
}

func measureAlpha(img *image.NRGBA) alphaStats {
	s := alphaStats{min: 255}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			a := row[i+3]
			if a < s.min {
				s.min = a
			}
			if a > s.max {
				s.max = a
			}
			switch a {
			case 255:
				s.opaque++
			case 0:
				s.transparent++
				if row[i] != 0 || row[i+1] != 0 || row[i+2] != 0 {
					s.hidden++
				}
			default:
				s.partial++
			}
		}
	}
	return s
}

func (a *app) inspect(args []string) int {
	fs := a.flagSet("inspect", "<file>...")
	if code, ok := parse(fs, args); !ok {
		return code
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	code := exitOK
	for _, path := range fs.Args() {
		img, f, err := atlasio.DecodeFile(path)
		if err != nil {
			fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
			code = exitFailure
			continue
		}
		b := img.Bounds()
		kind := skin.Layout(img)

		fmt.Fprintf(a.stdout, "%s:\n", path)
		fmt.Fprintf(a.stdout, "  format: %s\n", f)
		fmt.Fprintf(a.stdout, "  size:   %dx%d\n", b.Dx(), b.Dy())
		fmt.Fprintf(a.stdout, "  layout: %s\n", kind)
		if kind != skin.Unknown {
			fmt.Fprintf(a.stdout, "  ratio:  %s\n", region.RatioFor(b.Dx()))
		}
		s := measureAlpha(img)
		fmt.Fprintf(a.stdout, "  alpha:  min=%d max=%d opaque=%d transparent=%d partial=%d hidden=%d\n",
			s.min, s.max, s.opaque, s.transparent, s.partial, s.hidden)
	}
	return code
}
