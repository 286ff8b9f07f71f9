// Ordered free-text matching with a mandatory fallback.
package types

// Case maps an exact pattern to the message emitted when it matches.
type Case struct {
	Pattern string
	Message string
}

// Matcher evaluates its cases top to bottom. The first case whose pattern
// equals the input wins; if none match, the fallback is returned.
type Matcher struct {
	cases    []Case
	fallback string
}

// NewMatcher builds a Matcher. The fallback is the terminal wildcard case
// and must not be empty; NewMatcher returns ErrMissingFallback otherwise.
func NewMatcher(fallback string, cases ...Case) (*Matcher, error) {
	if fallback == "" {
		return nil, ErrMissingFallback
	}
	return &Matcher{
		cases:    append([]Case(nil), cases...),
		fallback: fallback,
	}, nil
}

// Match returns the message for input.
func (m *Matcher) Match(input string) string {
	for _, c := range m.cases {
		if c.Pattern == input {
			return c.Message
		}
	}
	return m.fallback
}

// Cases returns a copy of the explicit cases in evaluation order.
func (m *Matcher) Cases() []Case {
	return append([]Case(nil), m.cases...)
}

// Fallback returns the message used when no case matches.
func (m *Matcher) Fallback() string {
	return m.fallback
}
