package ggtext

import "math"

// HorizontalAlign selects how a line's leftover horizontal space (its
// padding) is distributed once MaxWidth is set.
type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a HorizontalAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return "Unknown"
	}
}

// VerticalAlign selects how leftover vertical space is distributed once
// MaxHeight is set.
type VerticalAlign int

const (
	VTop VerticalAlign = iota
	VMiddle
	VBottom
)

func (a VerticalAlign) String() string {
	switch a {
	case VTop:
		return "Top"
	case VMiddle:
		return "Middle"
	case VBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// WrapStyle selects the granularity at which a line may wrap when no
// classifier-reported break candidate is available nearby.
type WrapStyle int

const (
	WrapWord WrapStyle = iota
	WrapLetter
)

// CoordinateSystem selects which way Y grows in produced glyph and line
// coordinates.
type CoordinateSystem int

const (
	PositiveYUp CoordinateSystem = iota
	PositiveYDown
)

// Settings is an immutable-per-pass configuration snapshot consumed by
// [Layout.Reset]. The zero value is usable; [DefaultSettings] gives more
// conventional starting values (hard breaks enabled, origin top-left).
type Settings struct {
	X, Y              float64
	MaxWidth          *float64
	MaxHeight         *float64
	HorizontalAlign   HorizontalAlign
	VerticalAlign     VerticalAlign
	WrapStyle         WrapStyle
	WrapHardBreaks    bool
	CoordinateSystem  CoordinateSystem
}

// DefaultSettings returns a Settings with no size bounds, left/top
// alignment, word wrapping, hard breaks enabled, and a PositiveYDown
// coordinate system (origin at the top-left, Y growing downward).
func DefaultSettings() Settings {
	return Settings{
		WrapHardBreaks:   true,
		CoordinateSystem: PositiveYDown,
	}
}

// maskWidth extends BreakMask (defined in linebreak.go) with a third bit
// meaningful only to the engine: whether max-width-driven wrapping is
// active at all. It is never passed to a Linebreaker.
const maskWidth BreakMask = 1 << 2

// resolvedSettings holds the derived values §4.1 specifies: wrap_mask,
// alignment multipliers, the justify flag, wrap-by-letter, and effective
// (always-finite) max dimensions.
type resolvedSettings struct {
	wrapMask     BreakMask
	hAlign       float64
	vAlign       float64
	justify      bool
	wrapByLetter bool
	maxWidth     float64
	maxHeight    float64
}

func resolveSettings(s Settings) resolvedSettings {
	r := resolvedSettings{
		maxWidth:  math.MaxFloat64,
		maxHeight: math.MaxFloat64,
		wrapMask:  MaskSoft,
	}
	if s.WrapHardBreaks {
		r.wrapMask |= MaskHard
	}
	r.wrapByLetter = s.WrapStyle == WrapLetter

	if s.MaxWidth != nil {
		r.maxWidth = *s.MaxWidth
		r.wrapMask |= maskWidth
		switch s.HorizontalAlign {
		case AlignCenter:
			r.hAlign = 0.5
		case AlignRight:
			r.hAlign = 1.0
		case AlignJustify:
			// Justified lines zero their own padding in breakLine; this
			// multiplier only ever applies to the final, unjustified line,
			// which reads as left-aligned.
			r.hAlign = 0.0
		default:
			r.hAlign = 0.0
		}
		r.justify = s.HorizontalAlign == AlignJustify
	}

	if s.MaxHeight != nil {
		r.maxHeight = *s.MaxHeight
		switch s.VerticalAlign {
		case VMiddle:
			r.vAlign = 0.5
		case VBottom:
			r.vAlign = 1.0
		default:
			r.vAlign = 0.0
		}
	}

	return r
}
