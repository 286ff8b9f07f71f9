// Fixed-arity tuples.
package types

// Pair is an ordered two-position tuple. Fields are positional.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair builds a Pair from its positions.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack destructures p into independent bindings.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Triple is an ordered three-position tuple. Fields are positional.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple builds a Triple from its positions.
func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Unpack destructures t into independent bindings.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}
