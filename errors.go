package ggtext

import "errors"

// Sentinel errors returned by the default Font/Linebreaker constructors.
// The layout engine itself never returns an error (§7 of the design: it is
// a best-effort layout); these guard only the adapters' construction.
var (
	// ErrEmptyFontData is returned when NewOpenTypeFont is given no bytes.
	ErrEmptyFontData = errors.New("ggtext: empty font data")
)
