package kernel

import (
	"fmt"

	"movebox/internal/pkg/errs"
)

// Role distinguishes the two kinds of authenticated users.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleStudent is a student who places orders and confirms handovers.
	RoleStudent

	// RoleMover is a mover who claims and works jobs.
	RoleMover
)

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	switch r {
	case RoleStudent, RoleMover:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleMover:
		return "Mover"
	default:
		return "Unknown"
	}
}

// Actor is the authenticated caller of a mutating operation. A zero
// Actor means the request carried no usable identity, so construction
// fails with a not-authenticated error rather than a validation error.
type Actor struct {
	id   UUID
	role Role

	isConstructed bool
}

// NewActor creates a validated Actor. An unconstructed ID or an unknown
// role yields a not-authenticated error; no operation should reach the
// domain on behalf of an anonymous caller.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, errs.NewNotAuthenticatedError("actor identity is missing")
	}

	if err := role.Validate(); err != nil {
		return Actor{}, errs.NewNotAuthenticatedError("actor role is missing")
	}

	return Actor{id: id, role: role, isConstructed: true}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsStudent reports whether the actor is a student.
func (a Actor) IsStudent() bool {
	return a.role == RoleStudent
}

// IsMover reports whether the actor is a mover.
func (a Actor) IsMover() bool {
	return a.role == RoleMover
}

// Validate ensures the Actor was built through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return errs.NewNotAuthenticatedError("actor is not constructed")
	}

	return nil
}
