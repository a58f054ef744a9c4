package ggtext

import "math"

// Finalize implements §4.5: the second pass converting tracking-relative
// x into absolute coordinates and assigning every line's baseline from
// the accumulated vertical metrics. It is a no-op if no glyph has ever
// been appended.
func (l *Layout[U]) Finalize() {
	if len(l.glyphs) == 0 {
		return
	}

	last := &l.lines[len(l.lines)-1]
	if last.GlyphEnd < last.GlyphStart && len(l.glyphs)-1 >= last.GlyphStart {
		last.GlyphEnd = len(l.glyphs) - 1
	}

	dir := 1.0
	if l.settings.CoordinateSystem == PositiveYDown {
		dir = -1.0
	}

	if cap(l.output) < len(l.glyphs) {
		l.output = make([]GlyphPosition[U], 0, len(l.glyphs))
	}
	l.output = l.output[:0]

	baselineY := l.settings.Y - dir*math.Floor((l.resolved.maxHeight-l.Height())*l.resolved.vAlign)

	for i := range l.lines {
		line := &l.lines[i]

		xPadding := l.settings.X - line.trackingX
		if l.resolved.maxWidth < math.MaxFloat64 {
			xPadding += math.Floor(line.Padding * l.resolved.hAlign)
		}

		baselineY -= dir * line.MaxAscent
		line.BaselineY = baselineY

		for gi := line.GlyphStart; gi <= line.GlyphEnd; gi++ {
			g := l.glyphs[gi]
			g.X = math.Round(g.X + xPadding)
			g.Y = math.Round(g.Y + baselineY)
			l.output = append(l.output, g)
		}

		lh := lineHeightMultiplier(line.LineHeight)
		baselineY -= dir * (line.MaxNewLineSize*lh - line.MaxAscent)
	}
}
