package user

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"
	"movebox/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrNameIsRequired is returned when attempting to create a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents an account in the system, either a student or a mover.
// It is an aggregate root that manages identity, the mover credit balance
// and the push notification token.
//
// Business rules:
//   - Users must have a valid UUID, non-empty name and a known role
//   - Only movers hold a credit balance; crediting a student is rejected
//   - The credit balance never decreases through domain operations
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// name is the human-readable name of the user
	name string
	// role distinguishes students from movers
	role kernel.Role
	// creditCents is the mover's accumulated earnings in integer cents
	creditCents int64
	// fcmToken is the registered push notification token, if any
	fcmToken *string
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser creates a new User with a zero credit balance and no push
// token. All parameters are validated.
func NewUser(id kernel.UUID, name string, role kernel.Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// re-validating all invariants.
func RestoreUser(id kernel.UUID, name string, role kernel.Role, creditCents int64, fcmToken *string) (*User, error) {
	u, err := NewUser(id, name, role)
	if err != nil {
		return nil, err
	}

	if creditCents < 0 {
		return nil, errs.NewValueIsOutOfRangeError("creditCents", creditCents, 0, int64(1<<62))
	}

	u.creditCents = creditCents
	if fcmToken != nil && *fcmToken != "" {
		u.fcmToken = fcmToken
	}

	return u, nil
}

// Validate checks if the User was properly constructed using the NewUser
// constructor. The zero value of User is invalid.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	if other == nil {
		return false
	}
	return u.id.IsEqual(other.id)
}

// ID returns the unique identifier of the user.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the human-readable name of the user.
func (u *User) Name() string {
	return u.name
}

// Role returns whether the user is a student or a mover.
func (u *User) Role() kernel.Role {
	return u.role
}

// CreditCents returns the mover's accumulated earnings in integer cents.
// Always zero for students.
func (u *User) CreditCents() int64 {
	return u.creditCents
}

// FcmToken returns the registered push notification token, or nil.
func (u *User) FcmToken() *string {
	return u.fcmToken
}

// Credit adds the amount to the mover's balance. Crediting a student is
// forbidden.
func (u *User) Credit(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	if u.role != kernel.RoleMover {
		return errs.NewForbiddenError(u.id.String(), "earn credit")
	}

	u.creditCents += amount.Cents()
	return nil
}

// SetFcmToken registers the user's push notification token.
func (u *User) SetFcmToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("fcmToken")
	}
	u.fcmToken = &token
	return nil
}

// ClearFcmToken forgets the push notification token, typically after the
// push service reported it as unregistered.
func (u *User) ClearFcmToken() {
	u.fcmToken = nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
