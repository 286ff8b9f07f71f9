package scenarios

import (
	"io"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// FlowControl prints a greeting chosen by a boolean literal with if/else.
type FlowControl struct{}

const flowControlFlag = true

func (FlowControl) Name() string  { return "flow-control" }
func (FlowControl) Topic() string { return "flow control using if/else on a boolean" }
func (FlowControl) Input() string { return "true" }

func (FlowControl) Run(out io.Writer) error {
	return writeLines(out, types.Salutation(flowControlFlag))
}
