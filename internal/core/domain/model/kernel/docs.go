// Package kernel provides core domain primitives for the movebox system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Address: A value object for pickup and dropoff locations
//   - Money: A value object for job prices and mover credit amounts, in integer cents
//   - Actor: The authenticated caller (student or mover) of a mutating operation
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
