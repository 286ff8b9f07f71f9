package types

// Color is a primary paint color.
type Color int

// Color variants, in declaration order.
const (
	ColorRed Color = iota + 1
	ColorYellow
	ColorBlue
)

// Colors lists every declared Color.
var Colors = []Color{ColorRed, ColorYellow, ColorBlue}

// Name returns the lowercase color name printed by the color scenario.
func (c Color) Name() (string, error) {
	switch c {
	case ColorRed:
		return "red", nil
	case ColorYellow:
		return "yellow", nil
	case ColorBlue:
		return "blue", nil
	default:
		return "", ErrUnknownVariant
	}
}

func (c Color) String() string {
	name, err := c.Name()
	if err != nil {
		return "unknown"
	}
	return name
}
