package job

import (
	"fmt"

	"movebox/internal/pkg/errs"
)

// Type distinguishes the two physical legs a job can represent.
//
//   - Storage: the mover collects items from the student and delivers them
//     to the storage facility.
//   - Return: the mover collects items out of storage and delivers them
//     back to the student.
//
// The type never changes after creation and gates which confirmation side
// channel applies: arrival confirmation is Storage-only, delivery
// confirmation is Return-only.
type Type int

const (
	// TypeUnknown represents an invalid or undefined job type.
	// This value (0) helps catch uninitialized Type values.
	TypeUnknown Type = iota

	// TypeStorage is the drop-off leg: student's room to storage facility.
	TypeStorage

	// TypeReturn is the return leg: storage facility back to the student.
	TypeReturn
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		TypeStorage: "Storage",
		TypeReturn:  "Return",
	}
}

// Validate checks that the Type is one of the defined job types.
func (t Type) Validate() error {
	if t != TypeStorage && t != TypeReturn {
		return errs.NewValueIsInvalidErrorWithCause("job type",
			fmt.Errorf("%d is not a valid job type", t))
	}
	return nil
}

// String returns the human-readable name of the job type. It implements
// fmt.Stringer and is safe to call on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
