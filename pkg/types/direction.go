package types

// Direction is a turn instruction.
type Direction int

// Direction variants.
const (
	DirectionLeft Direction = iota + 1
	DirectionRight
)

// Instruction returns the spoken instruction for d.
func (d Direction) Instruction() (string, error) {
	switch d {
	case DirectionLeft:
		return "go left", nil
	case DirectionRight:
		return "go right", nil
	default:
		return "", ErrUnknownVariant
	}
}

// String returns the variant name, or "unknown" for undeclared values.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}
