// Package scenarios holds the built-in drills. Each scenario owns a fixed
// literal input and writes the message its decision function selects.
// Scenarios share no state; Registry only orders and indexes them.
package scenarios
