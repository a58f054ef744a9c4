package ggtext

import "math"

// breakLine implements §4.4: close the current line at its recorded
// line-end, optionally justify it, fold its height into the running
// total, and open a fresh line carrying the active style forward.
func (l *Layout[U]) breakLine(hard bool) {
	cur := &l.lines[len(l.lines)-1]

	endIdx := l.lineEndIdx
	endPos := l.lineEndPos
	if endIdx < cur.GlyphStart {
		// No word-boundary recorded yet on this line (e.g. the very
		// first glyph already overflows): close at the current glyph.
		endIdx = len(l.glyphs) - 1
		endPos = l.currentPos
	}
	cur.GlyphEnd = endIdx
	if l.resolved.maxWidth < math.MaxFloat64 {
		cur.Padding = l.resolved.maxWidth - (endPos - l.startPos)
	}

	cur.MaxNewLineSize = math.Max(cur.MaxNewLineSize, 0)
	l.accumulatedHeight += cur.MaxNewLineSize * lineHeightMultiplier(cur.LineHeight)

	if l.resolved.justify && !hard {
		l.justifyLine(cur)
	}

	breakGlyphIdx := l.bestBreak.glyphIndex
	breakPos := l.bestBreak.x
	if l.bestBreak.strength == BreakNone {
		breakGlyphIdx = len(l.glyphs) - 1
		breakPos = l.currentPos
	}

	next := freshLine(breakPos, breakGlyphIdx+1)
	if l.currentStyle.valid {
		next.MaxAscent = l.currentStyle.ascent
		next.MinDescent = l.currentStyle.descent
		next.MaxLineGap = l.currentStyle.lineGap
		next.MaxNewLineSize = l.currentStyle.newLineSize
		lh := l.currentStyle.lineHeight
		next.LineHeight = &lh
	}
	l.lines = append(l.lines, next)

	l.bestBreak = breakCandidate{strength: BreakNone, glyphIndex: breakGlyphIdx}
	l.lineEndIdx = -1
	l.lineEndPos = breakPos
	l.prevNonWhitespace = false
	l.startPos = breakPos
}

// justifyLine implements §4.4 step 3: redistribute a closed line's
// padding across its whitespace glyphs. Open Question 2 resolution:
// n_spaces == 0 is a no-op, never a divide-by-zero.
func (l *Layout[U]) justifyLine(line *LinePosition) {
	if line.GlyphStart > line.GlyphEnd {
		return
	}
	nSpaces := 0
	for i := line.GlyphStart; i < line.GlyphEnd; i++ {
		if l.glyphs[i].Class == ClassWhitespace {
			nSpaces++
		}
	}
	if nSpaces == 0 {
		return
	}

	extraSpace := line.Padding / float64(nSpaces)
	dx := 0.0
	for i := line.GlyphStart; i <= line.GlyphEnd; i++ {
		g := &l.glyphs[i]
		g.X = math.Ceil(g.X + dx)
		if g.Class == ClassWhitespace {
			dx += extraSpace
		}
	}
	line.Padding = 0
}
