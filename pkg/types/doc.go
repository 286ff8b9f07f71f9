// Package types defines the Scenario interface, the value types the drills
// scenarios operate on, and the decision functions that map those values to
// console messages.
//
// Enumerated types are named integers whose zero value is not a declared
// variant. Their dispatch methods switch over every declared variant and
// return ErrUnknownVariant for anything else.
package types
