// Package services provides domain services that orchestrate business operations
// across multiple domain entities of the production forecasting engine. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DurationEstimator: Estimates production duration with a trained regression
//     ensemble, falling back to a deterministic formula when no model is available
//   - DeliveryScheduler: Computes delivery dates and queue positions under a
//     bounded-concurrency production floor
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
