package scenarios

import (
	"io"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// ColorScenario passes a Color to a printing function that matches on it.
type ColorScenario struct{}

const colorInput = types.ColorBlue

func (ColorScenario) Name() string  { return "color" }
func (ColorScenario) Topic() string { return "working with an enum: color names" }
func (ColorScenario) Input() string { return colorInput.String() }

func (ColorScenario) Run(out io.Writer) error {
	return printColor(out, colorInput)
}

func printColor(out io.Writer, c types.Color) error {
	name, err := c.Name()
	if err != nil {
		return err
	}
	return writeLines(out, name)
}
