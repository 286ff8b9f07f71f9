package scenarios

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// CoordinateScenario destructures a returned (x, y) tuple and compares y to 5.
type CoordinateScenario struct{}

func coordinate() types.Coordinate {
	return types.NewPair(1, 7)
}

func (CoordinateScenario) Name() string  { return "coordinate" }
func (CoordinateScenario) Topic() string { return "data management with tuples: compare y to 5" }

func (CoordinateScenario) Input() string {
	x, y := coordinate().Unpack()
	return fmt.Sprintf("(%d, %d)", x, y)
}

func (CoordinateScenario) Run(out io.Writer) error {
	_, y := coordinate().Unpack()
	return writeLines(out, types.CompareToPivot(y))
}
