// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the waste pickup system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Dispatcher: selects a property company and recycling station for a pending order
//   - Settlement: computes estimated and final charges and closes weighed orders
//   - CanView: decides whether an actor may see a given order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
