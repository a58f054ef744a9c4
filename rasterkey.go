package ggtext

import "math"

// RasterKey identifies one rendered glyph at one size in one font: the
// (glyph-index, pixel-size, font-hash) triple external caches key their
// rasterized bitmaps on. All fields are plain integers, so RasterKey is
// comparable and usable directly as a Go map key; pixel size is stored as
// its IEEE-754 bit pattern so equality and hashing are exact rather than
// float-comparison-fuzzy.
type RasterKey struct {
	GlyphIndex   uint16
	pixelSizeBits uint32
	FontHash     uint64
}

// NewRasterKey builds a RasterKey for the given glyph, pixel size, and
// font content hash (see [Font.FileHash]).
func NewRasterKey(glyphIndex uint16, pixelSize float32, fontHash uint64) RasterKey {
	return RasterKey{
		GlyphIndex:    glyphIndex,
		pixelSizeBits: math.Float32bits(pixelSize),
		FontHash:      fontHash,
	}
}

// PixelSize returns the pixel size this key was constructed with.
func (k RasterKey) PixelSize() float32 {
	return math.Float32frombits(k.pixelSizeBits)
}

// Hash returns a stable, order-sensitive hash of the key, suitable for a
// sharded or bucketed external cache (see rastercache.Cache).
func (k RasterKey) Hash() uint64 {
	const prime = 1099511628211
	h := uint64(14695981039346656037)
	h = (h ^ uint64(k.GlyphIndex)) * prime
	h = (h ^ uint64(k.pixelSizeBits)) * prime
	h = (h ^ k.FontHash) * prime
	return h
}
