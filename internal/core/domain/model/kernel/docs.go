// Package kernel provides core domain primitives for the order admission and
// scheduling engine. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - TimeSlot: The closed set of daily meal windows with their canonical clock times
//   - DeliveryDate: A calendar date value object used for scheduling deliveries
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
