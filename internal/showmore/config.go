package showmore

// Defaults used by DefaultConfig. Normalized also applies the label and colour
// defaults to empty fields; MaxLength is always taken as given.
const (
	DefaultMaxLength            = 250
	DefaultMoreLabel            = "ShowMore"
	DefaultLessLabel            = "ShowLess"
	DefaultAffixColor     Color = 0xFF999999
	DefaultAffixSizeRatio       = 0.9
)

// Color is a packed ARGB value (0xAARRGGBB).
type Color uint32

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Config holds the resolved widget configuration.
type Config struct {
	MaxLength  int    // Negative disables truncation
	MoreLabel  string // Affix shown on the collapsed variant
	LessLabel  string // Affix shown on the expanded variant
	AffixColor Color  // Zero means unset, so 0x00000000 cannot be chosen
	Expanded   bool   // Initial view state, read by New only
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		MaxLength:  DefaultMaxLength,
		MoreLabel:  DefaultMoreLabel,
		LessLabel:  DefaultLessLabel,
		AffixColor: DefaultAffixColor,
	}
}

// Normalized fills empty labels and a zero colour with their defaults.
// Each label falls back to its own default, never to the other label.
func (c Config) Normalized() Config {
	if c.MoreLabel == "" {
		c.MoreLabel = DefaultMoreLabel
	}
	if c.LessLabel == "" {
		c.LessLabel = DefaultLessLabel
	}
	if c.AffixColor == 0 {
		c.AffixColor = DefaultAffixColor
	}
	return c
}

// Truncates reports whether text of n runes is cut by this configuration.
func (c Config) Truncates(n int) bool {
	return c.MaxLength >= 0 && n >= c.MaxLength
}
