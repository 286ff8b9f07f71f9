package scenarios

import (
	"io"
	"strconv"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// NameMatch matches a name literal against an ordered list of known names.
type NameMatch struct{}

const nameMatchInput = "Bob"

// NameMatchFallback is printed for any name without a case of its own.
const NameMatchFallback = "nice to meet you!"

// NewNameMatcher returns the ordered name cases with their fallback.
func NewNameMatcher() *types.Matcher {
	m, err := types.NewMatcher(NameMatchFallback,
		types.Case{Pattern: "Jayson", Message: "that is my name"},
		types.Case{Pattern: "Bob", Message: "not my name"},
		types.Case{Pattern: "Alice", Message: "hello alice"},
	)
	if err != nil {
		panic(err) // fallback is a non-empty constant
	}
	return m
}

func (NameMatch) Name() string  { return "name-match" }
func (NameMatch) Topic() string { return "match on strings with a wildcard fallback" }
func (NameMatch) Input() string { return strconv.Quote(nameMatchInput) }

func (NameMatch) Run(out io.Writer) error {
	return writeLines(out, NewNameMatcher().Match(nameMatchInput))
}
