// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects to detect zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is only valid when obtained from NewConstructorGuard. Its zero value
// fails validation, so a struct literal built outside its constructor can be rejected:
//
//	type SubmitOrderCommand struct {
//	    checkoutID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
