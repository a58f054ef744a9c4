package ggtext

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// UnisegLinebreaker is the default [Linebreaker], driving
// github.com/rivo/uniseg's UAX #14 boundary classifier one code point at a
// time to match the streaming next(char) contract this package's
// Linebreaker interface requires.
//
// Because uniseg.Step ordinarily consumes a whole remaining buffer and
// returns what it didn't use, feeding it isolated one-rune slices (with
// continuity carried only through its opaque state integer) is a
// deliberate narrowing to fit the single-code-point contract, not an
// attempt to replicate uniseg's normal whole-text usage.
type UnisegLinebreaker struct {
	state int
}

// NewUnisegLinebreaker returns a Linebreaker ready for use.
func NewUnisegLinebreaker() *UnisegLinebreaker {
	return &UnisegLinebreaker{state: -1}
}

// Reset implements Linebreaker.
func (u *UnisegLinebreaker) Reset() {
	u.state = -1
}

// Next implements Linebreaker.
func (u *UnisegLinebreaker) Next(r rune) LinebreakData {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)

	_, _, boundaries, newState := uniseg.Step(buf[:n], u.state)
	u.state = newState

	switch (boundaries & uniseg.MaskLine) >> uniseg.ShiftLine {
	case uniseg.LineMustBreak:
		return LinebreakData{strength: BreakHard}
	case uniseg.LineCanBreak:
		return LinebreakData{strength: BreakSoft}
	default:
		return LinebreakData{strength: BreakNone}
	}
}
