package kernel

import (
	"fmt"

	"movebox/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates that an Address was not created via
// the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress constructor",
)

// maxAddressLineLength bounds free-form address fields so a single bad
// request cannot bloat job rows or notification payloads.
const maxAddressLineLength = 255

// Address is a value object for a pickup or dropoff location. Jobs carry
// two of them: where the mover collects the items and where they end up
// (the storage facility for STORAGE jobs, the student's room for RETURN
// jobs).
//
// Address is immutable; all fields are validated on construction.
//
// Example:
//
//	pickup, err := kernel.NewAddress("12 College Ave", "Boston", "02215")
//	if err != nil {
//	    return err
//	}
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	zip    string

	isConstructed bool
}

// NewAddress creates a validated Address. Street and city are required;
// zip may be empty for campuses addressed internally.
func NewAddress(street, city, zip string) (Address, error) {
	addr := Address{isConstructed: true}

	if err := addr.setStreet(street); err != nil {
		return Address{}, err
	}
	if err := addr.setCity(city); err != nil {
		return Address{}, err
	}
	if err := addr.setZip(zip); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate ensures the Address was created through NewAddress. Called when
// rehydrating aggregates from persistence.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Zip returns the postal code, possibly empty.
func (a Address) Zip() string {
	return a.zip
}

// String renders the address as a single display line.
func (a Address) String() string {
	if a.zip == "" {
		return fmt.Sprintf("%s, %s", a.street, a.city)
	}
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.zip)
}

// IsEqual reports whether two addresses have identical components.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.zip == other.zip
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if len(street) > maxAddressLineLength {
		return errs.NewValueIsOutOfRangeError("street length", len(street), 1, maxAddressLineLength)
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if len(city) > maxAddressLineLength {
		return errs.NewValueIsOutOfRangeError("city length", len(city), 1, maxAddressLineLength)
	}
	a.city = city
	return nil
}

func (a *Address) setZip(zip string) error {
	if len(zip) > maxAddressLineLength {
		return errs.NewValueIsOutOfRangeError("zip length", len(zip), 0, maxAddressLineLength)
	}
	a.zip = zip
	return nil
}
