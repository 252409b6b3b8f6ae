// Package kernel provides the value objects shared by the order intake domain.
//
// The package includes:
//   - UUID: identifiers for orders and checkout sessions
//   - Date: a calendar date without time of day, used for delivery dates and the picker cutoff
//
// Both types reject their zero value through Validate so that a missing identifier or an
// unselected date can never be confused with a real one.
package kernel
