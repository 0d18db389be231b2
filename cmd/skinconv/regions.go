package main

import (
	"fmt"
	"image"
	"text/tabwriter"

	"mc-skin-converter/internal/atlasio"
	"mc-skin-converter/internal/region"
	"mc-skin-converter/internal/regionmap"
)

// maxMapSide bounds each side of a rendered region map.
const maxMapSide = 16384

func (a *app) regions(args []string) int {
	fs := a.flagSet("regions", "[-width N] [-scale N] [-o map.png] [atlas]")
	width := fs.Int("width", region.BaseSize, "atlas width used when no atlas is given")
	scale := fs.Int("scale", 8, "nearest-neighbour upscale factor for the rendered map")
	out := fs.String("o", "", "write a region map image to this path")
	if code, ok := parse(fs, args); !ok {
		return code
	}
	if fs.NArg() > 1 || *width <= 0 || *scale <= 0 {
		fs.Usage()
		return exitUsage
	}

	var atlas *image.NRGBA
	w := *width
	if fs.NArg() == 1 {
		img, _, err := atlasio.DecodeFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
			return exitFailure
		}
		atlas = img
		w = img.Bounds().Dx()
	}
	if *out != "" && *scale > maxMapSide/w {
		fmt.Fprintf(a.stderr, "skinconv: region map of %d px at scale %d exceeds %d px\n", w, *scale, maxMapSide)
		return exitUsage
	}

	fmt.Fprintf(a.stdout, "width %d, ratio %s\n", w, region.RatioFor(w))
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LIMB\tFACE\tSOURCE (right)\tDESTINATION (left)")
	for _, s := range region.ScaleAll(w) {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\n", s.Limb, s.Face, s.Src, s.Dst)
	}
	tw.Flush()

	if *out == "" {
		return exitOK
	}

	var (
		img *image.NRGBA
		err error
	)
	if atlas != nil {
		img, err = regionmap.Render(atlas, *scale)
	} else {
		img, err = regionmap.Blank(w, *scale)
	}
	if err == nil {
		err = atlasio.WriteFile(*out, img, atlasio.FormatFromPath(*out))
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "skinconv: %v\n", err)
		return exitFailure
	}
	fmt.Fprintf(a.stdout, "Wrote %s\n", *out)
	return exitOK
}
