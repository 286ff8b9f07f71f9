// Drink record and flavor variants.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Flavor is the taste profile of a drink.
type Flavor int

// Flavor variants.
const (
	FlavorSparkling Flavor = iota + 1
	FlavorSweet
	FlavorFruity
)

// Flavors lists every declared Flavor.
var Flavors = []Flavor{FlavorSparkling, FlavorSweet, FlavorFruity}

// Name returns the lowercase flavor name.
func (f Flavor) Name() (string, error) {
	switch f {
	case FlavorSparkling:
		return "sparkling", nil
	case FlavorSweet:
		return "sweet", nil
	case FlavorFruity:
		return "fruity", nil
	default:
		return "", ErrUnknownVariant
	}
}

func (f Flavor) String() string {
	name, err := f.Name()
	if err != nil {
		return "unknown"
	}
	return name
}

// Drink pairs a flavor with its volume in fluid ounces. Both fields are
// always set together; use NewDrink.
type Drink struct {
	Flavor  Flavor
	FluidOz float64
}

// NewDrink builds a Drink from its two fields.
func NewDrink(flavor Flavor, fluidOz float64) Drink {
	return Drink{Flavor: flavor, FluidOz: fluidOz}
}

// Lines returns the two output lines for d: the flavor line followed by
// the ounces line.
func (d Drink) Lines() ([]string, error) {
	name, err := d.Flavor.Name()
	if err != nil {
		return nil, fmt.Errorf("flavor %d: %w", int(d.Flavor), err)
	}
	return []string{
		"flavor: " + name,
		"OZ: " + FormatOunces(d.FluidOz),
	}, nil
}

// FormatOunces renders v in its shortest form and always keeps a fractional
// part, so 6 becomes "6.0" and 6.25 stays "6.25".
func FormatOunces(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
