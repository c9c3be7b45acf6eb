// Package order provides domain entities and business logic for the order
// fulfillment lifecycle. It implements the Order aggregate root with state
// transitions driven by an explicit transition table.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, scheduling data, and lifecycle
//   - Status: A state machine that enforces valid fulfillment status transitions
//
// Key business rules:
//   - Orders must reference a customer, a kitchen, and at least one menu item
//   - Orders are accepted in Pending status and progress through
//     Confirmed -> Preparing -> Delivering -> Completed
//   - Confirmed orders may skip straight to Delivering for kitchens that do
//     not track a preparing step
//   - Any non-terminal order may be Cancelled; Completed and Cancelled are final
//   - Each successful transition increments the aggregate version, which the
//     persistence layer uses for optimistic concurrency control
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
