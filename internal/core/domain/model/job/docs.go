// Package job provides domain entities and business logic for job management
// in the movebox system. It implements the Job aggregate root with lifecycle
// management, actor authorization, and state transitions.
//
// The package includes:
//   - Job: The aggregate root that manages job identity, properties, and lifecycle
//   - Status: A state machine that enforces valid job status transitions
//   - Type: Storage vs Return, gating the confirmation side channel
//
// Key business rules:
//   - Jobs must have a valid identifier, positive volume, and positive price
//   - A job has no mover while Available and exactly one immutable mover after
//     acceptance
//   - Status follows Available -> Accepted -> PickedUp -> Completed, with the
//     AwaitingStudentConfirmation side channel entered by the mover and exited
//     by the student
//   - Only the assigned mover may advance an accepted job, and only the job's
//     student may confirm pickup or delivery
//   - Cancellation is driven by order cancellation only
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package job
