package ggtext

import (
	"fmt"
	"hash/fnv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OpenTypeFont is the default [Font] implementation, parsing a TTF/OTF
// byte slice with golang.org/x/image/font/opentype and answering metrics
// queries against its sfnt.Font.
type OpenTypeFont struct {
	font *opentype.Font
	hash uint64
	buf  sfnt.Buffer
}

// NewOpenTypeFont parses font data (TTF or OTF). The returned *OpenTypeFont
// is not safe for concurrent use across goroutines (it owns a scratch
// sfnt.Buffer); use one per goroutine, or guard with a mutex.
func NewOpenTypeFont(data []byte) (*OpenTypeFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("ggtext: parse font: %w", err)
	}
	h := fnv.New64a()
	h.Write(data)
	return &OpenTypeFont{font: f, hash: h.Sum64()}, nil
}

// FileHash implements Font.
func (f *OpenTypeFont) FileHash() uint64 { return f.hash }

// LookupGlyphIndex implements Font.
func (f *OpenTypeFont) LookupGlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// HorizontalLineMetrics implements Font.
func (f *OpenTypeFont) HorizontalLineMetrics(px float64) (FontLineMetrics, bool) {
	ppem := fixed.Int26_6(px * 64)
	m, err := f.font.Metrics(&f.buf, ppem, font.HintingFull)
	if err != nil {
		return FontLineMetrics{}, false
	}
	ascent := fix26ToFloat64(m.Ascent)
	descent := -fix26ToFloat64(m.Descent)
	height := fix26ToFloat64(m.Height)
	return FontLineMetrics{
		Ascent:      ascent,
		Descent:     descent,
		LineGap:     height - ascent + descent,
		NewLineSize: height,
	}, true
}

// MetricsIndexed implements Font.
func (f *OpenTypeFont) MetricsIndexed(glyphIndex uint16, px float64) GlyphMetrics {
	ppem := fixed.Int26_6(px * 64)
	gid := sfnt.GlyphIndex(glyphIndex)

	var advance float64
	if a, err := f.font.GlyphAdvance(&f.buf, gid, ppem, font.HintingFull); err == nil {
		advance = fix26ToFloat64(a)
	}

	var bounds GlyphBounds
	var w, h int
	if rect, _, err := f.font.GlyphBounds(&f.buf, gid, ppem, font.HintingFull); err == nil {
		bounds = GlyphBounds{
			XMin:   fix26ToFloat64(rect.Min.X),
			YMin:   -fix26ToFloat64(rect.Max.Y),
			Width:  fix26ToFloat64(rect.Max.X - rect.Min.X),
			Height: fix26ToFloat64(rect.Max.Y - rect.Min.Y),
		}
		w = int(bounds.Width + 0.5)
		h = int(bounds.Height + 0.5)
	}

	return GlyphMetrics{AdvanceWidth: advance, Bounds: bounds, Width: w, Height: h}
}

func fix26ToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
