package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/marcus/showmore/internal/showmore"
)

// ErrInvalidColor is returned by ParseColor for values it cannot resolve.
var ErrInvalidColor = errors.New("invalid color")

// namedColors lists the colour names accepted in attribute files.
var namedColors = map[string]showmore.Color{
	"black":     0xFF000000,
	"darkgray":  0xFF444444,
	"darkgrey":  0xFF444444,
	"gray":      0xFF888888,
	"grey":      0xFF888888,
	"lightgray": 0xFFCCCCCC,
	"lightgrey": 0xFFCCCCCC,
	"white":     0xFFFFFFFF,
	"red":       0xFFFF0000,
	"green":     0xFF00FF00,
	"blue":      0xFF0000FF,
	"yellow":    0xFFFFFF00,
	"cyan":      0xFF00FFFF,
	"aqua":      0xFF00FFFF,
	"magenta":   0xFFFF00FF,
	"fuchsia":   0xFFFF00FF,
	"lime":      0xFF00FF00,
	"maroon":    0xFF800000,
	"navy":      0xFF000080,
	"olive":     0xFF808000,
	"purple":    0xFF800080,
	"silver":    0xFFC0C0C0,
	"teal":      0xFF008080,
}

// ParseColor resolves "#RRGGBB", "#AARRGGBB" or a colour name.
func ParseColor(s string) (showmore.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}

	if !strings.HasPrefix(s, "#") {
		if c, ok := namedColors[strings.ToLower(s)]; ok {
			return c, nil
		}
		return 0, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	switch len(hex) {
	case 6:
		return showmore.Color(v | 0xFF000000), nil
	case 8:
		return showmore.Color(v), nil
	default:
		return 0, fmt.Errorf("%w: %q must have 6 or 8 hex digits", ErrInvalidColor, s)
	}
}
