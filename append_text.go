package ggtext

import (
	"context"
	"log/slog"
	"math"
)

// appendText implements §4.2: resolve the effective font/pixel-size,
// fold its horizontal line metrics into the current line, then walk each
// code point through break-candidate tracking, line-end tracking, the
// wrap decision, and glyph emission.
func (l *Layout[U]) appendText(span Span[U]) {
	if span.content.text == "" {
		return
	}
	if span.Font != nil {
		l.currentFont = span.Font
	}
	if span.PixelSize != nil {
		l.currentPx = *span.PixelSize
	}
	font := l.currentFont
	if font == nil {
		return
	}
	px := l.currentPx

	if lm, ok := font.HorizontalLineMetrics(px); ok {
		l.currentStyle = currentStyle{
			ascent:      math.Ceil(lm.Ascent),
			descent:     math.Ceil(lm.Descent),
			lineGap:     math.Ceil(lm.LineGap),
			newLineSize: math.Ceil(lm.NewLineSize),
			lineHeight:  lineHeightMultiplier(span.LineHeight),
			valid:       true,
		}
		l.updateLastLineMetrics()
	} else if Logger().Enabled(context.Background(), slog.LevelDebug) {
		Logger().Debug("ggtext: font exposes no horizontal metrics at size", "px", px)
	}

	for _, r := range span.content.text {
		l.appendRune(span, font, px, r)
	}

	l.finishSpan()
}

// appendRune implements §4.2 steps 1-10 for one decoded code point.
func (l *Layout[U]) appendRune(span Span[U], font Font, px float64, r rune) {
	var raw LinebreakData
	if l.linebreaker != nil {
		raw = l.linebreaker.Next(r)
	}
	masked := raw.Mask(l.resolved.wrapMask)
	class := classifyRune(r)

	// Step 5: break-candidate update, folding in wrap_by_letter as a
	// synthetic Soft candidate so character-wise wrapping always has
	// somewhere to break even without a classifier-reported boundary.
	effective := masked
	if l.resolved.wrapByLetter && class != ClassControl && effective.strength < BreakSoft {
		effective = LinebreakData{strength: BreakSoft}
	}
	if effective.strength >= l.bestBreak.strength {
		l.bestBreak = breakCandidate{
			strength:   effective.strength,
			x:          l.currentPos,
			glyphIndex: len(l.glyphs) - 1,
		}
	}

	var gid uint16
	var gm GlyphMetrics
	var advance float64
	if class != ClassControl {
		gid = font.LookupGlyphIndex(r)
		gm = font.MetricsIndexed(gid, px)
		advance = math.Ceil(gm.AdvanceWidth + span.Kerning)
	}
	isWhitespace := class == ClassWhitespace

	// Step 6: line-end tracking, using state as of just before this
	// glyph, before any break this glyph might trigger closes the line.
	if class != ClassControl && l.prevNonWhitespace && (isWhitespace || l.resolved.wrapByLetter) {
		l.lineEndPos = l.currentPos
		l.lineEndIdx = len(l.glyphs) - 1
	}

	// Step 7: wrap decision. Whitespace and control characters never
	// force an overflow wrap; they overflow silently.
	widthEnabled := l.resolved.wrapMask&maskWidth != 0
	overflow := class != ClassControl && widthEnabled && !isWhitespace &&
		(l.currentPos-l.startPos+advance) > l.resolved.maxWidth

	if masked.IsHard() || overflow {
		l.breakLine(masked.IsHard())
	}

	if class == ClassControl {
		return
	}

	// Step 8: y from bounding-box ymin and rise (Y-up, so this is the
	// bottom edge), flipped under PositiveYDown to the negated upper edge
	// so y is always the top edge there.
	y := gm.Bounds.YMin + span.Rise
	if l.settings.CoordinateSystem == PositiveYDown {
		y = -(y + gm.Bounds.Height)
	}
	// Step 9: push the glyph at tracking-relative x.
	x := math.Floor(l.currentPos + gm.Bounds.XMin)
	key := NewRasterKey(gid, float32(px), font.FileHash())

	l.glyphs = append(l.glyphs, GlyphPosition[U]{
		Key:      &key,
		Font:     font,
		Char:     r,
		Width:    gm.Width,
		Height:   gm.Height,
		X:        x,
		Y:        y,
		Class:    class,
		UserData: span.UserData,
	})

	// Step 10: advance current_pos, track whitespace state.
	l.currentPos += advance
	l.prevNonWhitespace = !isWhitespace
}

// updateLastLineMetrics folds the current style into the last line's
// running aggregates: max of ascent/line-gap/new-line-size, min of
// descent, max-of-maxes for the line-height multiplier.
func (l *Layout[U]) updateLastLineMetrics() {
	cur := &l.lines[len(l.lines)-1]
	cs := l.currentStyle
	cur.MaxAscent = math.Max(cur.MaxAscent, cs.ascent)
	cur.MinDescent = math.Min(cur.MinDescent, cs.descent)
	cur.MaxLineGap = math.Max(cur.MaxLineGap, cs.lineGap)
	cur.MaxNewLineSize = math.Max(cur.MaxNewLineSize, cs.newLineSize)
	if cur.LineHeight == nil || cs.lineHeight > *cur.LineHeight {
		lh := cs.lineHeight
		cur.LineHeight = &lh
	}
}

// finishSpan updates the active line's padding and glyph_end once a span
// has been fully appended.
func (l *Layout[U]) finishSpan() {
	if len(l.lines) == 0 {
		return
	}
	cur := &l.lines[len(l.lines)-1]
	if l.resolved.maxWidth < math.MaxFloat64 {
		cur.Padding = l.resolved.maxWidth - (l.currentPos - l.startPos)
	}
	if len(l.glyphs) > 0 {
		cur.GlyphEnd = len(l.glyphs) - 1
	}
}
