// Package provider provides domain entities and business logic for service
// provider management in the fixmate system. It implements the ServiceProvider
// aggregate root with availability handling and work eligibility checks.
//
// The package includes:
//   - ServiceProvider: The aggregate root that manages provider identity, specialization, and availability
//   - Specialization: The enumerated trade a provider is qualified for
//
// Key business rules:
//   - Providers must have a valid unique identifier and a non-empty name
//   - Providers are available by default and toggle availability explicitly
//   - A provider is eligible for a request when available and when its
//     specialization covers the request's service type
//   - No cap is placed on how many requests a provider may hold at once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package provider
