package ggtext

// BlockAlign selects how an inline [Block] span contributes to its line's
// vertical metrics.
type BlockAlign int

const (
	// BlockBaseline treats the block's full height as ascent, with zero
	// descent and line gap.
	BlockBaseline BlockAlign = iota
	// BlockMiddle synthesizes an ascent/descent split that scales the
	// current font's ascent:descent ratio to the block's height.
	BlockMiddle
)

type spanContent struct {
	text        string
	isBlock     bool
	blockWidth  float64
	blockHeight float64
	blockAlign  BlockAlign
}

// Span is one appended unit of input: either a run of text or an inline
// block. It carries optional per-call overrides (font, pixel size, rise,
// kerning, line-height) resolved against the engine's running style when
// absent, plus caller-supplied user data threaded through to every
// resulting [GlyphPosition].
//
// Span is built with [Text] or [Block] and the fluent With* methods,
// mirroring the builder-style Span API spec.md's Open Questions call for.
type Span[U any] struct {
	Font      Font
	PixelSize *float64
	Rise      float64
	Kerning   float64
	LineHeight *float64
	UserData  U

	content spanContent
}

// Text returns a Span appending a run of UTF-8 text.
func Text[U any](text string) Span[U] {
	return Span[U]{content: spanContent{text: text}}
}

// Block returns a Span appending an inline rectangle of the given size,
// treated as a single opaque non-whitespace glyph.
func Block[U any](width, height float64, align BlockAlign) Span[U] {
	return Span[U]{content: spanContent{isBlock: true, blockWidth: width, blockHeight: height, blockAlign: align}}
}

// WithFont overrides the font used for this span.
func (s Span[U]) WithFont(f Font) Span[U] {
	s.Font = f
	return s
}

// WithPixelSize overrides the pixel size used for this span.
func (s Span[U]) WithPixelSize(px float64) Span[U] {
	s.PixelSize = &px
	return s
}

// WithRise sets a vertical offset applied to the y of every glyph of a
// text span. Block spans ignore it.
func (s Span[U]) WithRise(rise float64) Span[U] {
	s.Rise = rise
	return s
}

// WithKerning sets a per-span additive adjustment to advance width.
func (s Span[U]) WithKerning(kerning float64) Span[U] {
	s.Kerning = kerning
	return s
}

// WithLineHeight overrides the line-height multiplier this span
// contributes to its line (default 1.0).
func (s Span[U]) WithLineHeight(multiplier float64) Span[U] {
	s.LineHeight = &multiplier
	return s
}

// WithUserData attaches caller data copied into every glyph this span
// produces.
func (s Span[U]) WithUserData(u U) Span[U] {
	s.UserData = u
	return s
}
