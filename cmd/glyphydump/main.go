// Command glyphydump encodes characters of a font and writes the glyph
// textures, metadata and arc outline of each one to a directory.
//
// Usage:
//
//	glyphydump -font path.ttf -chars "ABg" -out dir [-backend gotext|sfnt] [-tolerance f] [-v]
//
// Without -font the embedded Go Regular font is used.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphy"
	"github.com/gogpu/glyphy/fontsrc"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "font file (default: embedded Go Regular)")
		chars     = flag.String("chars", "glyphy", "characters to encode")
		out       = flag.String("out", ".", "output directory")
		backend   = flag.String("backend", "gotext", "outline backend: gotext or sfnt")
		tolerance = flag.Float64("tolerance", 0, "arc fit tolerance per em (0: default)")
		spirv     = flag.Bool("spirv", false, "also write the compiled shader as glyphy.spv")
		verbose   = flag.Bool("v", false, "log encoder details")
	)
	flag.Parse()

	if *verbose {
		glyphy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	src, err := openSource(*fontPath, *backend)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	cfg := glyphy.DefaultConfig()
	if *tolerance > 0 {
		cfg.TolerancePerEm = *tolerance
	}
	enc, err := glyphy.NewEncoder(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	glyphs, err := enc.EncodeBatch(ctx, []rune(*chars), src)
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	for _, g := range glyphs {
		if err := writeGlyph(*out, g); err != nil {
			log.Fatalf("Failed to write %q: %v", g.Char, err)
		}
	}
	log.Printf("Encoded %d glyphs into %s\n", len(glyphs), *out)

	if *spirv {
		if err := writeSPIRV(filepath.Join(*out, "glyphy.spv")); err != nil {
			log.Fatalf("Failed to compile shader: %v", err)
		}
	}
}

func openSource(path, backend string) (fontsrc.Source, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}

	switch backend {
	case "gotext":
		return fontsrc.ParseGoText(data)
	case "sfnt":
		return fontsrc.ParseSFNT(data)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
