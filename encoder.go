package glyphy

import (
	"context"
	"fmt"
	"math"

	"github.com/gogpu/glyphy/blob"
	"github.com/gogpu/glyphy/fontsrc"
	"github.com/gogpu/glyphy/geom"
	"github.com/gogpu/glyphy/internal/parallel"
	"github.com/gogpu/glyphy/outline"
)

// Encoder turns glyph outlines into Glyphs.
//
// An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	cfg  Config
	pool *parallel.WorkerPool
}

// NewEncoder creates an encoder with the given configuration.
func NewEncoder(cfg Config) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{cfg: cfg, pool: parallel.NewWorkerPool(0)}, nil
}

// Config returns the encoder's configuration.
func (e *Encoder) Config() Config {
	return e.cfg
}

// Encode encodes the outline of char given in design units of a font with
// upem units per em. An outline without contours yields an Empty glyph.
func (e *Encoder) Encode(char string, cmds []outline.Command, upem int) (*Glyph, error) {
	if upem <= 0 || upem > e.cfg.MaxUnitsPerEm {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUnitsPerEm, upem)
	}
	em := float64(upem)
	tolerance := em * e.cfg.TolerancePerEm

	acc := outline.NewAccumulator(tolerance)
	acc.MaxSegments = e.cfg.MaxSegments
	if err := acc.Accumulate(cmds); err != nil {
		return nil, fmt.Errorf("glyphy: %q: %w", char, err)
	}
	endpoints := acc.Result()

	gridPerEm := max(e.cfg.MinGridPerEm, (len(endpoints)+e.cfg.EndpointsPerCell-1)/e.cfg.EndpointsPerCell)
	params := blob.Params{
		Faraway:      em / (e.cfg.MinFontSize * math.Sqrt2),
		GridUnit:     em / float64(gridPerEm),
		EnlightenMax: em * e.cfg.EnlightenPerEm,
		EmboldenMax:  em * e.cfg.EmboldenPerEm,
		CellMargin:   e.cfg.CellMargin,
	}

	resolved, reversed := outline.ResolveWinding(endpoints, false)

	// The grid works in a uniformly shrunk copy of design space when the
	// padded glyph box is wider than the 12-bit coordinate range.
	scale := 1.0
	if span := params.PaddedSpan(resolved); span > blob.MaxCoord {
		scale = (blob.MaxCoord - 1) / span
	}
	b, err := blob.Encode(scaleEndpoints(resolved, scale), params.Scale(scale))
	if err != nil {
		return nil, fmt.Errorf("glyphy: %q: %w", char, err)
	}

	g := &Glyph{
		Char:       char,
		Endpoints:  resolved,
		Blob:       b,
		BlobScale:  scale,
		Tex:        b.Tex,
		UnitsPerEm: upem,
		Tolerance:  tolerance,
		MaxError:   acc.MaxError(),
		Reversed:   reversed,
		Empty:      b.Tex == nil,
		Info: GlyphInfo{
			NominalW: b.Width,
			NominalH: b.Height,
		},
	}
	if g.Empty {
		g.Info.Extents = geom.EmptyAABB()
	} else {
		ext := b.Extents
		ext.Scale(1/(em*scale), 1/(em*scale))
		g.Info.Extents = ext
	}

	logGlyph(Logger(), g, params)
	return g, nil
}

func scaleEndpoints(endpoints []geom.ArcEndpoint, s float64) []geom.ArcEndpoint {
	if s == 1 {
		return endpoints
	}
	out := make([]geom.ArcEndpoint, len(endpoints))
	for i, ep := range endpoints {
		out[i] = geom.ArcEndpoint{P: geom.Pt(ep.P.X*s, ep.P.Y*s), D: ep.D}
	}
	return out
}

// EncodeRune encodes the glyph of r from src.
func (e *Encoder) EncodeRune(src fontsrc.Source, r rune) (*Glyph, error) {
	cmds, err := src.Outline(r)
	if err != nil {
		return nil, err
	}
	return e.Encode(string(r), cmds, src.UnitsPerEm())
}

// EncodeBatch encodes the glyphs of runes from src on up to GOMAXPROCS
// goroutines. The result is in the order of runes. The first error, or
// the cancellation of ctx, stops further work and is returned.
//
// src must be safe for concurrent use.
func (e *Encoder) EncodeBatch(ctx context.Context, runes []rune, src fontsrc.Source) ([]*Glyph, error) {
	glyphs := make([]*Glyph, len(runes))
	err := e.pool.Run(ctx, len(runes), func(i int) error {
		g, err := e.EncodeRune(src, runes[i])
		if err != nil {
			return fmt.Errorf("rune %U: %w", runes[i], err)
		}
		glyphs[i] = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return glyphs, nil
}
