package ggtext

import "math"

// appendBlock implements §4.3: a block is a single synthetic non-
// whitespace glyph carrying caller-specified width/height and no raster
// key.
func (l *Layout[U]) appendBlock(span Span[U]) {
	w := span.content.blockWidth
	h := span.content.blockHeight
	if w <= 0 || h <= 0 {
		return
	}

	px := l.currentPx
	if span.PixelSize != nil {
		px = *span.PixelSize
	}

	var ascent, descent, lineGap, newLine float64
	if span.content.blockAlign == BlockMiddle && l.currentFont != nil {
		if lm, ok := l.currentFont.HorizontalLineMetrics(px); ok && lm.Ascent != lm.Descent {
			ratio := h / (lm.Ascent - lm.Descent)
			blockAscent := lm.Ascent * ratio
			blockDescent := lm.Descent * ratio
			ascent = math.Ceil(blockAscent)
			descent = math.Ceil(blockDescent)
			newLine = math.Ceil(blockAscent - blockDescent + lm.LineGap)
			lineGap = math.Ceil(lm.LineGap)
		} else {
			ascent, newLine = h, h
		}
	} else {
		ascent, newLine = h, h
	}

	l.currentStyle = currentStyle{
		ascent: ascent, descent: descent, lineGap: lineGap, newLineSize: newLine,
		lineHeight: lineHeightMultiplier(span.LineHeight), valid: true,
	}
	l.updateLastLineMetrics()

	// A block is never whitespace, so line-end tracking only fires here
	// under wrap_by_letter, exactly as it would for a non-whitespace
	// glyph in appendRune.
	if l.prevNonWhitespace && l.resolved.wrapByLetter {
		l.lineEndPos = l.currentPos
		l.lineEndIdx = len(l.glyphs) - 1
	}

	advance := math.Ceil(w + span.Kerning)
	widthEnabled := l.resolved.wrapMask&maskWidth != 0
	overflow := widthEnabled && (l.currentPos-l.startPos+advance) > l.resolved.maxWidth
	if overflow {
		l.breakLine(false)
	}

	var y float64
	if l.settings.CoordinateSystem == PositiveYDown {
		y = -ascent
	} else {
		y = descent
	}
	x := math.Floor(l.currentPos)

	l.glyphs = append(l.glyphs, GlyphPosition[U]{
		Key:      nil,
		Font:     l.currentFont,
		Char:     0,
		Width:    int(w + 0.5),
		Height:   int(h + 0.5),
		X:        x,
		Y:        y,
		Class:    ClassOther,
		UserData: span.UserData,
	})

	l.currentPos += advance
	l.prevNonWhitespace = true

	l.finishSpan()
}
