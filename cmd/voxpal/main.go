// voxpal is a CLI utility for the console palette: it prints the table,
// finds nearest colors and converts images to palette-indexed PNGs.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/snapshot"
	"github.com/voxconsole/vox/pkg/palette"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "palette", "pal":
		cmdPalette()
	case "closest", "find":
		cmdClosest(args)
	case "quantize", "q":
		cmdQuantize(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`voxpal - console palette utility

Usage:
  voxpal <command> [options]

Commands:
  palette                              Print the 16-color palette
  closest <r> <g> <b>                  Find the nearest palette index
  quantize [-dither] [-scale n] <in> <out.png>
                                       Convert an image to the palette

Examples:
  voxpal palette
  voxpal closest 250 10 80
  voxpal quantize -scale 4 sprites.png sprites_x4.png`)
}

func cmdPalette() {
	for i, c := range palette.Default {
		fmt.Printf("%2d  #%02x%02x%02x  %3d %3d %3d\n", i, c.R, c.G, c.B, c.R, c.G, c.B)
	}
}

func cmdClosest(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: voxpal closest <r> <g> <b>")
		os.Exit(1)
	}

	var rgb [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil || v < 0 || v > 255 {
			fmt.Fprintf(os.Stderr, "Error: invalid channel value %q (0-255)\n", a)
			os.Exit(1)
		}
		rgb[i] = v
	}

	idx := palette.FindClosest(rgb[0], rgb[1], rgb[2])
	c := palette.Default[idx]
	dist := palette.Distance(rgb[0], rgb[1], rgb[2], int(c.R), int(c.G), int(c.B))
	fmt.Printf("%d  #%02x%02x%02x  distance %.2f\n", idx, c.R, c.G, c.B, dist)
}

func cmdQuantize(args []string) {
	fs := flag.NewFlagSet("quantize", flag.ExitOnError)
	dither := fs.Bool("dither", false, "Use Floyd-Steinberg error diffusion")
	scale := fs.Int("scale", 1, "Integer upscale factor for the output")
	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: voxpal quantize [-dither] [-scale n] <in> <out.png>")
		os.Exit(1)
	}
	if *scale < 1 {
		fmt.Fprintln(os.Stderr, "Error: -scale must be at least 1")
		os.Exit(1)
	}

	img, err := assets.LoadImageFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := snapshot.Scale(snapshot.Quantize(img, &palette.Default, *dither), *scale)
	if err := snapshot.WritePNG(fs.Arg(1), out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := out.Bounds()
	fmt.Printf("Wrote %s (%dx%d)\n", fs.Arg(1), b.Dx(), b.Dy())
}
