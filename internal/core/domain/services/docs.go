// Package services provides domain services that coordinate business rules
// across multiple domain entities. It implements logic that doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionPolicy: Judges requested job status changes and decides their side effects
//   - OrderStatusMapper: Derives the order status implied by a job status change
//
// Both services are pure: they perform no I/O and depend only on their
// inputs, which keeps the coupling between the job and order lifecycles
// testable in isolation.
package services
