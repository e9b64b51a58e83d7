// Command fontbake bakes glyph sequences into a compressed font atlas.
//
// Usage:
//
//	fontbake [flags] <font-family> <font-size> <padding> <output-file> <glyph-text-file>...
//
// Each glyph text file contributes one sequence per non-empty line; files
// are read in argument order. The font family may also be a font file path.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/fontbake"
	"github.com/gogpu/fontbake/text"
)

// errUsage is returned when the positional arguments are incomplete.
var errUsage = errors.New("usage")

// options holds the parsed command line.
type options struct {
	family  string
	size    float32
	padding float32
	output  string
	inputs  []string

	codec   string
	level   int
	dedupe  bool
	nfc     bool
	preview string
	verbose bool
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts, err := parseArgs(fs, os.Args[1:])
	if errors.Is(err, errUsage) {
		fs.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("fontbake: %v", err)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	fontbake.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts, text.NewResolver(), os.Stdout); err != nil {
		log.Fatalf("fontbake: %v", err)
	}
}

// parseArgs parses flags and the positional arguments.
func parseArgs(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{}
	fs.StringVar(&opts.codec, "codec", "zstd", "compression codec: zstd or brotli")
	fs.IntVar(&opts.level, "level", 0, "compression level (0 selects the strongest)")
	fs.BoolVar(&opts.dedupe, "dedupe", false, "drop repeated sequences")
	fs.BoolVar(&opts.nfc, "nfc", false, "normalize sequences to Unicode NFC")
	fs.StringVar(&opts.preview, "preview", "", "also write the atlas as a PNG image")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: %s [flags] (font family) (font size) (padding) (output file) (glyph text files...)\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	pos := fs.Args()
	if len(pos) < 4 {
		return nil, errUsage
	}

	size, err := strconv.ParseFloat(pos[1], 32)
	if err != nil {
		return nil, fmt.Errorf("invalid font size %q: %w", pos[1], err)
	}
	padding, err := strconv.ParseFloat(pos[2], 32)
	if err != nil {
		return nil, fmt.Errorf("invalid padding %q: %w", pos[2], err)
	}

	opts.family = pos[0]
	opts.size = float32(size)
	opts.padding = float32(padding)
	opts.output = pos[3]
	opts.inputs = pos[4:]
	return opts, nil
}

// run bakes the font described by opts and writes the output files.
func run(opts *options, resolver *text.Resolver, stdout io.Writer) error {
	codec, err := fontbake.ParseCodec(opts.codec)
	if err != nil {
		return err
	}
	cfg, err := fontbake.NewConfig(opts.family, opts.size,
		fontbake.WithPadding(opts.padding),
		fontbake.WithCodec(codec),
		fontbake.WithLevel(opts.level),
		fontbake.WithDedupe(opts.dedupe),
		fontbake.WithNormalization(opts.nfc),
	)
	if err != nil {
		return err
	}

	seqs, err := fontbake.ReadSequences(opts.inputs...)
	if err != nil {
		return err
	}

	source, err := resolver.Resolve(cfg.Family)
	if err != nil {
		return err
	}
	face := source.Face(cfg.Size)
	m := face.Metrics()
	fontbake.Logger().Info("font loaded", "name", source.Name(), "ascent", m.Ascent, "descent", m.Descent)

	res, err := fontbake.Bake(face, cfg, seqs)
	if err != nil {
		return err
	}
	data, err := res.Encode(cfg.Codec, cfg.Level)
	if err != nil {
		return err
	}
	if err := fontbake.WriteFile(opts.output, data); err != nil {
		return err
	}
	if opts.preview != "" {
		if err := fontbake.WritePNG(opts.preview, res.Image); err != nil {
			return err
		}
	}
	return writeSummary(stdout, opts.output, res.Font)
}

// writeSummary prints a one-line summary of a baked font.
func writeSummary(w io.Writer, path string, f *fontbake.Font) error {
	_, err := fmt.Fprintf(w, "%s: %dx%d atlas, %d direct glyphs, %d ordered glyphs\n",
		path, f.Width, f.Height(), f.Map16.Count(), f.Dict32.Len())
	return err
}
