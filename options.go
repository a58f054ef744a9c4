package ggtext

// SettingsOption configures a Settings during construction with
// [NewSettings]. A Settings built from a struct literal works identically;
// these are ergonomic sugar for the common cases.
//
// Example:
//
//	s := ggtext.NewSettings(
//		ggtext.WithMaxWidth(480),
//		ggtext.WithHorizontalAlign(ggtext.AlignJustify),
//	)
type SettingsOption func(*Settings)

// NewSettings builds a Settings starting from [DefaultSettings] and
// applying opts in order.
func NewSettings(opts ...SettingsOption) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithOrigin sets the region origin.
func WithOrigin(x, y float64) SettingsOption {
	return func(s *Settings) {
		s.X, s.Y = x, y
	}
}

// WithMaxWidth bounds the layout region's width, enabling width-driven
// wrapping and horizontal alignment.
func WithMaxWidth(w float64) SettingsOption {
	return func(s *Settings) {
		s.MaxWidth = &w
	}
}

// WithMaxHeight bounds the layout region's height, enabling vertical
// alignment.
func WithMaxHeight(h float64) SettingsOption {
	return func(s *Settings) {
		s.MaxHeight = &h
	}
}

// WithHorizontalAlign sets the horizontal alignment.
func WithHorizontalAlign(a HorizontalAlign) SettingsOption {
	return func(s *Settings) {
		s.HorizontalAlign = a
	}
}

// WithVerticalAlign sets the vertical alignment.
func WithVerticalAlign(a VerticalAlign) SettingsOption {
	return func(s *Settings) {
		s.VerticalAlign = a
	}
}

// WithWrapStyle sets word- or letter-granularity wrapping.
func WithWrapStyle(w WrapStyle) SettingsOption {
	return func(s *Settings) {
		s.WrapStyle = w
	}
}

// WithHardBreaks toggles whether classifier-reported hard breaks force a
// line break.
func WithHardBreaks(enabled bool) SettingsOption {
	return func(s *Settings) {
		s.WrapHardBreaks = enabled
	}
}

// WithCoordinateSystem sets which way Y grows in produced coordinates.
func WithCoordinateSystem(cs CoordinateSystem) SettingsOption {
	return func(s *Settings) {
		s.CoordinateSystem = cs
	}
}
