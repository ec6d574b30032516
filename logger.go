package glyphy

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/glyphy/blob"
)

// nopHandler discards every record. Enabled reports false, so logGlyph
// builds no attributes while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with encoding from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for glyphy.
// By default, glyphy produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by glyphy:
//   - [slog.LevelDebug]: per-glyph pipeline summary (endpoints, grid, texels)
//   - [slog.LevelWarn]: arc fits above tolerance, ambiguous distance signs,
//     glyph boxes scaled into the coordinate range
//
// Example:
//
//	glyphy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by glyphy.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logGlyph reports an encoded glyph: a Debug summary of the pipeline, and
// a Warn for each condition that may show up as rendering artifacts.
func logGlyph(l *slog.Logger, g *Glyph, params blob.Params) {
	ctx := context.Background()
	s := g.Blob.Stats
	if l.Enabled(ctx, slog.LevelDebug) {
		l.LogAttrs(ctx, slog.LevelDebug, "glyphy: glyph encoded",
			slog.String("char", g.Char),
			slog.Int("endpoints", len(g.Endpoints)),
			slog.Float64("max_error", g.MaxError),
			slog.Group("grid",
				slog.Int("w", g.Blob.Width),
				slog.Int("h", g.Blob.Height),
				slog.Float64("cell_size", g.Blob.CellSize),
				slog.Float64("unit", params.GridUnit),
				slog.Float64("scale", g.BlobScale),
			),
			slog.Group("texels",
				slog.Int("line_cells", s.LineCells),
				slog.Int("slots", s.Slots),
				slog.Int("before", s.PixelsBefore),
				slog.Int("after", s.PixelsAfter),
				slog.Int("max_run", s.MaxEndpoints),
			),
		)
	}
	if g.MaxError > g.Tolerance {
		l.Warn("glyphy: arc fit above tolerance",
			"char", g.Char, "max_error", g.MaxError, "tolerance", g.Tolerance)
	}
	if s.Ambiguous > 0 {
		l.Warn("glyphy: ambiguous distance sign", "char", g.Char, "cells", s.Ambiguous)
	}
	if g.BlobScale < 1 {
		l.Warn("glyphy: glyph box scaled to fit coordinate range",
			"char", g.Char, "scale", g.BlobScale)
	}
}
