// Boolean flags derived from literal comparisons.
package types

// BigThreshold is the exclusive lower bound for a value to count as big.
const BigThreshold = 100

// Messages selected by SizeMessage.
const (
	MsgBig   = "it's big"
	MsgSmall = "it's small"
)

// Messages selected by Salutation.
const (
	MsgHello   = "hello"
	MsgGoodbye = "goodbye"
)

// IsBig reports whether value is strictly greater than BigThreshold.
// BigThreshold itself counts as small.
func IsBig(value int) bool {
	return value > BigThreshold
}

// SizeMessage maps the big/small flag to its message.
func SizeMessage(big bool) string {
	if big {
		return MsgBig
	}
	return MsgSmall
}

// Salutation returns MsgHello when on is set and MsgGoodbye otherwise.
func Salutation(on bool) string {
	if on {
		return MsgHello
	}
	return MsgGoodbye
}
