package scenarios

import (
	"io"
	"strconv"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// Expressions stores a threshold comparison in a boolean and dispatches on it.
type Expressions struct{}

const expressionsValue = 100

func (Expressions) Name() string  { return "expressions" }
func (Expressions) Topic() string { return "working with expressions: a flag derived from value > 100" }
func (Expressions) Input() string { return strconv.Itoa(expressionsValue) }

func (Expressions) Run(out io.Writer) error {
	isBig := types.IsBig(expressionsValue)
	return writeLines(out, types.SizeMessage(isBig))
}
