// Package request provides domain entities and business logic for service
// request management in the fixmate system. It implements the ServiceRequest
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - ServiceRequest: The aggregate root that manages request identity, properties, and lifecycle
//   - Status: A state machine that enforces valid request status transitions
//   - ServiceType: The enumerated category of requested work
//
// Key business rules:
//   - Requests must reference a valid vehicle and carry a valid service type
//   - Request status follows a defined workflow:
//     Pending -> Assigned -> InProgress -> Completed, with Rejected reachable
//     from every non-terminal status
//   - A request carries an assigned provider exactly while its status is
//     Assigned, InProgress, or Completed
//   - Completed and Rejected are terminal; no further transitions are allowed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package request
