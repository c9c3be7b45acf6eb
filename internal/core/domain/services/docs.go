// Package services provides domain services that apply business rules spanning
// multiple domain entities in the order admission engine. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AdmissionService: the three admission checks (advance booking, slot
//     capacity, prep-time feasibility) a candidate order must pass
//   - The structured rejection errors those checks raise
//
// Domain services stay pure: repositories are queried by the application
// layer, which hands the data to the checks.
package services
