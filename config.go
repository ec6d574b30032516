package glyphy

import "math"

// Config holds the encoding parameters. Per-em values are scaled by a
// font's units per em when a glyph is encoded.
type Config struct {
	// TolerancePerEm is the largest allowed distance between an outline
	// and its arcs.
	// Default: 10/1024
	TolerancePerEm float64

	// MinFontSize is the smallest pixel size the encoding must render
	// well. It sets the faraway distance to upem/(MinFontSize*sqrt(2)).
	// Default: 10
	MinFontSize float64

	// EnlightenPerEm and EmboldenPerEm are the largest outline offsets
	// the shader may apply.
	// Default: 0.005 and 0.012
	EnlightenPerEm float64
	EmboldenPerEm  float64

	// MinGridPerEm is the smallest number of cells per em.
	// Default: 20
	MinGridPerEm int

	// EndpointsPerCell raises the grid density for glyphs with many
	// endpoints: the grid has at least endpoints/EndpointsPerCell cells
	// per em.
	// Default: 4
	EndpointsPerCell int

	// MaxSegments bounds the arcs fitted to one curve.
	// Default: 100
	MaxSegments int

	// CellMargin widens the arc search around each cell, in design units.
	// Default: 5
	CellMargin float64

	// MaxUnitsPerEm is the largest accepted units per em.
	// Default: 4096
	MaxUnitsPerEm int
}

// DefaultConfig returns the default encoding configuration.
func DefaultConfig() Config {
	return Config{
		TolerancePerEm:   10.0 / 1024,
		MinFontSize:      10,
		EnlightenPerEm:   0.005,
		EmboldenPerEm:    0.012,
		MinGridPerEm:     20,
		EndpointsPerCell: 4,
		MaxSegments:      100,
		CellMargin:       5,
		MaxUnitsPerEm:    4096,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if !(c.TolerancePerEm > 0) || math.IsInf(c.TolerancePerEm, 0) {
		return &ConfigError{Field: "TolerancePerEm", Reason: "must be positive and finite"}
	}
	if !(c.MinFontSize > 0) || math.IsInf(c.MinFontSize, 0) {
		return &ConfigError{Field: "MinFontSize", Reason: "must be positive and finite"}
	}
	if !(c.EnlightenPerEm >= 0) {
		return &ConfigError{Field: "EnlightenPerEm", Reason: "must be non-negative"}
	}
	if !(c.EmboldenPerEm >= 0) {
		return &ConfigError{Field: "EmboldenPerEm", Reason: "must be non-negative"}
	}
	if c.MinGridPerEm < 1 {
		return &ConfigError{Field: "MinGridPerEm", Reason: "must be at least 1"}
	}
	if c.EndpointsPerCell < 1 {
		return &ConfigError{Field: "EndpointsPerCell", Reason: "must be at least 1"}
	}
	if c.MaxSegments < 1 {
		return &ConfigError{Field: "MaxSegments", Reason: "must be at least 1"}
	}
	if !(c.CellMargin >= 0) {
		return &ConfigError{Field: "CellMargin", Reason: "must be non-negative"}
	}
	if c.MaxUnitsPerEm < 1 {
		return &ConfigError{Field: "MaxUnitsPerEm", Reason: "must be at least 1"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphy: invalid config." + e.Field + ": " + e.Reason
}
