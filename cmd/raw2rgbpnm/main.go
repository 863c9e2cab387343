// Command raw2rgbpnm converts headerless raw camera frames to PNM images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pion/logging"
	internallogging "github.com/pion/raw2rgbpnm/internal/logging"
	"github.com/pion/raw2rgbpnm/pkg/demosaic"
	"github.com/pion/raw2rgbpnm/pkg/frame"
	"github.com/pion/raw2rgbpnm/pkg/io/raw"
	"github.com/pion/raw2rgbpnm/pkg/io/video"
	"github.com/pion/raw2rgbpnm/pkg/pnm"
)

var errUsage = errors.New("give input and output files")

var logger = internallogging.NewLogger("raw2rgbpnm/cmd")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "raw2rgbpnm: %v\n", err)
		os.Exit(1)
	}
}

type size struct {
	width, height int
}

func (s *size) String() string {
	if s.width == 0 && s.height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func (s *size) Set(v string) error {
	var w, h int
	if _, err := fmt.Sscanf(v, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("bad size %q", v)
	}
	s.width, s.height = w, h
	return nil
}

type options struct {
	algorithm  string
	brightness float64
	format     string
	highBits   bool
	sharpness  uint
	multiple   bool
	size       size
	swapRB     bool
	scale      size
	scaler     string
	verbose    bool
}

func parse(args []string, stdout io.Writer) (options, []string, error) {
	var o options
	fs := flag.NewFlagSet("raw2rgbpnm", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, "raw2rgbpnm - Convert headerless raw image to RGB file (PNM)")
		fmt.Fprintln(stdout, "Usage: raw2rgbpnm [flags] <inputfile> <outputfile>")
		fs.PrintDefaults()
	}
	fs.StringVar(&o.algorithm, "a", "", "bayer to RGB algorithm, use \"-a ?\" for a list")
	fs.Float64Var(&o.brightness, "b", 1.0, "brightness multiplier for Bayer data")
	fs.StringVar(&o.format, "f", "UYVY", "input format, use \"-f ?\" for a list")
	fs.BoolVar(&o.highBits, "g", false, "use high bits for Bayer RAW 10 data")
	fs.UintVar(&o.sharpness, "k", uint(demosaic.DefaultSharpness), "sharpness of the gptm algorithm (0-65535)")
	fs.BoolVar(&o.multiple, "n", false, "assume multiple input frames, extract several PNM files")
	fs.Var(&o.size, "s", "image size WxH")
	fs.BoolVar(&o.swapRB, "w", false, "swap R and B channels")
	fs.Var(&o.scale, "scale", "rescale output to WxH")
	fs.StringVar(&o.scaler, "scaler", "bilinear", "scaling algorithm: nearest, approx, bilinear, catmullrom, lanczos3")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	return o, fs.Args(), nil
}

func run(args []string, stdout io.Writer) error {
	o, files, err := parse(args, stdout)
	if err != nil {
		return err
	}

	if o.verbose {
		internallogging.SetLevel(logging.LogLevelDebug)
	} else {
		internallogging.SetLevel(logging.LogLevelWarn)
	}

	engine := demosaic.NewEngine()
	if o.algorithm == "?" {
		fmt.Fprintln(stdout, "Available bayer-to-rgb conversion algorithms:")
		for _, a := range engine.Algorithms() {
			depths := []string{}
			if a.Supports8 {
				depths = append(depths, "8")
			}
			if a.Supports10 {
				depths = append(depths, "10")
			}
			fmt.Fprintf(stdout, "%s (%s bit)\n", a.Name, strings.Join(depths, "/"))
		}
		return nil
	}
	if o.format == "?" {
		fmt.Fprintln(stdout, "Supported formats:")
		for _, info := range frame.Formats() {
			fmt.Fprintln(stdout, info.Name)
		}
		return nil
	}

	if o.algorithm != "" {
		if err := engine.Select(o.algorithm); err != nil {
			return err
		}
	}
	if o.sharpness > 0xffff {
		return fmt.Errorf("sharpness %d out of range", o.sharpness)
	}
	engine.SetSharpness(uint16(o.sharpness))
	name8, name10 := engine.Selected()
	logger.Debugf("bayer algorithms: 8-bit %s, 10-bit %q, sharpness %d", name8, name10, o.sharpness)

	info, ok := frame.ParseFormat(o.format)
	if !ok {
		return fmt.Errorf("bad format %q", o.format)
	}
	if len(files) != 2 {
		return errUsage
	}
	in, out := files[0], files[1]

	// Formats without a fixed depth are decoded as UYVY, so read them that way.
	bpp := info.BitsPerPixel
	if bpp <= 0 {
		bpp = 16
	}
	src, err := raw.Open(in, raw.Options{
		Width:        o.size.width,
		Height:       o.size.height,
		BitsPerPixel: bpp,
		Multiple:     o.multiple,
	})
	if err != nil {
		return err
	}
	width, height := src.Size()
	fmt.Fprintf(stdout, "Image size: %dx%d, bits per pixel: %d, format: %s\n", width, height, info.BitsPerPixel, info.Name)

	dec := frame.NewDecoder(engine,
		frame.WithSwapRB(o.swapRB),
		frame.WithHighBits(o.highBits),
		frame.WithBrightness(frame.BrightnessFromFloat(o.brightness)),
	)

	var transforms []video.TransformFunc
	if o.scale.width > 0 {
		scaler, ok := video.Scalers[o.scaler]
		if !ok {
			return fmt.Errorf("unknown scaler %q", o.scaler)
		}
		transforms = append(transforms, video.Scale(o.scale.width, o.scale.height, scaler))
	}
	r := video.Merge(transforms...)(video.DecodeFrames(src, dec, info.Format))

	for n := 0; ; n++ {
		img, release, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		path := out
		if o.multiple {
			path = fmt.Sprintf("%s-%03d.pnm", out, n)
		}
		fmt.Fprintf(stdout, "Writing to file `%s'...\n", path)
		err = pnm.Write(path, img)
		release()
		if err != nil {
			return err
		}
		if !o.multiple {
			return nil
		}
	}
}
