// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and the monotonic status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, addresses, and a positive volume and price
//   - Order status follows the progression: Pending -> Accepted -> PickedUp -> InStorage -> Returned
//   - Order status never regresses; cancellation is allowed from any non-terminal status
//   - The order status reflects the aggregated progress of the order's jobs
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
