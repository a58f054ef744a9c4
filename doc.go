// Package ggtext lays out styled text and inline blocks into a flat,
// positioned sequence of glyphs ready for an external rasterizer.
//
// # Overview
//
// A [Layout] is a long-lived object reused across layout passes:
//
//	lay := ggtext.New[MyUserData](ggtext.NewUnisegLinebreaker())
//	lay.Reset(ggtext.DefaultSettings())
//	lay.Append(ggtext.Text[MyUserData]("Hello, ").WithFont(face).WithPixelSize(16))
//	lay.Append(ggtext.Text[MyUserData]("world!"))
//	lay.Finalize()
//	for _, g := range lay.Glyphs() {
//		// rasterize g.Key, place at (g.X, g.Y)
//	}
//
// Calling Reset again re-seeds the same Layout for the next pass without
// releasing its internal buffers.
//
// # Font and line-break capabilities
//
// The engine never parses fonts or classifies Unicode line breaks itself;
// it consumes a [Font] per span and a single [Linebreaker] for the whole
// pass. [OpenTypeFont] and [UnisegLinebreaker] are the default
// implementations, backed by golang.org/x/image and github.com/rivo/uniseg
// respectively, but both are plain interfaces a caller may replace.
//
// # Coordinate system
//
// Every glyph's (x, y) is the origin of its bounding box; (x+width,
// y+height) is the opposite corner. Under [PositiveYDown], y is the top of
// the box; under [PositiveYUp], y is the bottom. All final coordinates are
// whole numbers.
package ggtext
