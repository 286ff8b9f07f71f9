package types

import "io"

// Scenario is a self-contained exercise. It holds a fixed input and writes
// the messages its decision function selects to out, one per line.
// Run must produce byte-identical output on every call.
type Scenario interface {
	// Name is the stable identifier used on the command line.
	Name() string

	// Topic is a one-line summary of the construct the scenario exercises.
	Topic() string

	// Input describes the fixed literal the scenario decides on.
	Input() string

	// Run writes the scenario output. The only errors are write failures
	// and ErrUnknownVariant.
	Run(out io.Writer) error
}
