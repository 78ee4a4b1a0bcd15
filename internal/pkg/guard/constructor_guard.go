// Package guard provides the constructor guard pattern used by commands,
// queries and value objects to ensure they are created through their
// designated constructor functions rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its
// constructor or as a zero value. Embed it in a struct and set it with
// NewConstructorGuard inside the constructor; Validate then reports
// improperly constructed instances.
//
// Example:
//
//	type CreateJobCommand struct {
//	    jobID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateJobCommand(jobID kernel.UUID) CreateJobCommand {
//	    return CreateJobCommand{jobID: jobID, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c CreateJobCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
