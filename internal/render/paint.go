package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Cap is the shape of the progress arc's ends.
type Cap uint8

const (
	CapRound Cap = iota
	CapStraight
)

func (c Cap) String() string {
	if c == CapStraight {
		return "straight"
	}
	return "round"
}

// ParseCap accepts "round" and "straight" ("butt" is an alias).
func ParseCap(s string) (Cap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round":
		return CapRound, nil
	case "straight", "butt":
		return CapStraight, nil
	}
	return CapRound, fmt.Errorf("unknown cap %q", s)
}

// PaintStyle selects whether a shape is only stroked or filled and stroked.
type PaintStyle uint8

const (
	Stroke PaintStyle = iota
	FillAndStroke
)

// Paint describes how one element of the ring is drawn.
type Paint struct {
	Color color.Color
	Width float64
	Cap   Cap
	Style PaintStyle
}

// ParseColor parses "#rgb" or "#rrggbb". The leading '#' is optional.
func ParseColor(s string) (color.Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !isHex(digits) || (len(digits) != 3 && len(digits) != 6) {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.Clamped(), nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// MustColor is ParseColor for compile-time constants.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexColor formats c as "#rrggbb", ignoring alpha.
func HexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}
