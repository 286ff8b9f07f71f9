package scenarios

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// Tuples shows positional access and destructuring side by side, then
// pairs values of different types.
type Tuples struct{}

func oneTwoThree() types.Triple[int, int, int] {
	return types.NewTriple(1, 2, 3)
}

func (Tuples) Name() string  { return "tuples" }
func (Tuples) Topic() string { return "tuples: positional access, destructuring, mixed types" }
func (Tuples) Input() string { return "(1, 2, 3) (2, 3) (\"Jake\", full) (\"Emma\", 20)" }

func (Tuples) Run(out io.Writer) error {
	numbers := oneTwoThree()
	x, y, z := oneTwoThree().Unpack()

	coord := types.NewPair(2, 3)
	cx, cy := types.NewPair(2, 3).Unpack()

	employee, access := types.NewPair("Jake", types.AccessFull).Unpack()
	name, age := types.NewPair("Emma", 20).Unpack()

	return writeLines(out,
		fmt.Sprintf("%d, %d", x, numbers.First),
		fmt.Sprintf("%d, %d", y, numbers.Second),
		fmt.Sprintf("%d, %d", z, numbers.Third),
		fmt.Sprintf("%d, %d", coord.First, coord.Second),
		fmt.Sprintf("%d, %d", cx, cy),
		fmt.Sprintf("%s, %s", employee, access),
		fmt.Sprintf("%s, %d", name, age),
	)
}
