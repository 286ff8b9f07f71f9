package types

// Access is an employee access level.
type Access int

// Access variants.
const (
	AccessFull Access = iota + 1
)

func (a Access) String() string {
	switch a {
	case AccessFull:
		return "full"
	default:
		return "unknown"
	}
}
