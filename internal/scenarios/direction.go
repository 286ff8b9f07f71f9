package scenarios

import (
	"io"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// DirectionScenario matches on a Direction variant.
type DirectionScenario struct{}

const directionInput = types.DirectionLeft

func (DirectionScenario) Name() string  { return "direction" }
func (DirectionScenario) Topic() string { return "working with an enum: direction" }
func (DirectionScenario) Input() string { return directionInput.String() }

func (DirectionScenario) Run(out io.Writer) error {
	msg, err := directionInput.Instruction()
	if err != nil {
		return err
	}
	return writeLines(out, msg)
}
