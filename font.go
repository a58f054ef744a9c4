package ggtext

// FontLineMetrics is a font's vertical metrics at one pixel size.
// Descent is negative, matching the GLOSSARY convention.
type FontLineMetrics struct {
	Ascent      float64
	Descent     float64
	LineGap     float64
	NewLineSize float64
}

// GlyphBounds is a glyph's bounding box relative to its origin, with Y
// growing upward like FontLineMetrics: YMin is the box's lower edge.
type GlyphBounds struct {
	XMin, YMin    float64
	Width, Height float64
}

// GlyphMetrics is one glyph's advance and bounding-box metrics at one
// pixel size.
type GlyphMetrics struct {
	AdvanceWidth float64
	Bounds       GlyphBounds
	Width        int
	Height       int
}

// Font is the opaque font capability the layout engine consumes. It is
// never asked to parse anything beyond what construction already did;
// every method here must be cheap enough to call once per code point.
//
// An ok=false result from HorizontalLineMetrics (a font missing metrics
// at a size) is expected and handled per §7: the engine preserves
// prior line aggregates rather than erroring.
type Font interface {
	// HorizontalLineMetrics returns this font's ascent/descent/line-gap at
	// px, or ok=false if the font exposes no horizontal metrics.
	HorizontalLineMetrics(px float64) (metrics FontLineMetrics, ok bool)
	// LookupGlyphIndex returns r's glyph index, or 0 (notdef) if absent.
	LookupGlyphIndex(r rune) uint16
	// MetricsIndexed returns advance and bounding-box metrics for a glyph
	// index at px.
	MetricsIndexed(glyphIndex uint16, px float64) GlyphMetrics
	// FileHash returns a stable identifier for the underlying font data,
	// used as part of a glyph's [RasterKey].
	FileHash() uint64
}
