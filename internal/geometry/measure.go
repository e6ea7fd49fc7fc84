package geometry

// BaseSizeDp is the desired ring diameter before strokes and padding.
const BaseSizeDp = 150

// Mode tells how a layout constraint limits one axis.
type Mode uint8

const (
	Unspecified Mode = iota
	AtMost
	Exactly
)

// Constraint is the size the host layout offers for one axis.
type Constraint struct {
	Mode Mode
	Size int
}

// Padding is the space the host reserves around the widget.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Density converts density-independent units to device pixels.
type Density float64

// Px converts dp to whole pixels, truncating toward zero.
func (d Density) Px(dp float64) int {
	if d <= 0 {
		d = 1
	}
	return int(dp * float64(d))
}

// Measure resolves the square side the widget asks for. The desired side is
// the thickest stroke plus the base size plus the larger padding pair; each
// axis then honours its constraint and the smaller side wins.
func Measure(width, height Constraint, thickest, base int, pad Padding) int {
	desired := thickest + base + max(pad.Top+pad.Bottom, pad.Left+pad.Right)
	side := min(resolve(width, desired), resolve(height, desired))
	if side < 0 {
		return 0
	}
	return side
}

func resolve(c Constraint, desired int) int {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		return min(desired, c.Size)
	default:
		return desired
	}
}
