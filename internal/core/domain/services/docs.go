// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fixmate system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RequestDispatcher: A domain service for matching pending service requests with eligible providers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
