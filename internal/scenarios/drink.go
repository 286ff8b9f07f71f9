package scenarios

import (
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// DrinkScenario prints the flavor and volume of two drink records.
type DrinkScenario struct{}

var drinkInputs = []types.Drink{
	types.NewDrink(types.FlavorSweet, 6.0),
	types.NewDrink(types.FlavorFruity, 7.0),
}

func (DrinkScenario) Name() string  { return "drink" }
func (DrinkScenario) Topic() string { return "organizing data with structs: a drink record" }

func (DrinkScenario) Input() string {
	parts := make([]string, 0, len(drinkInputs))
	for _, d := range drinkInputs {
		parts = append(parts, fmt.Sprintf("{%s, %s}", d.Flavor, types.FormatOunces(d.FluidOz)))
	}
	return strings.Join(parts, " ")
}

func (DrinkScenario) Run(out io.Writer) error {
	for _, d := range drinkInputs {
		if err := printDrink(out, d); err != nil {
			return err
		}
	}
	return nil
}

func printDrink(out io.Writer, d types.Drink) error {
	lines, err := d.Lines()
	if err != nil {
		return err
	}
	return writeLines(out, lines...)
}
