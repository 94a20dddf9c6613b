// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the matching and pricing engine. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - CarrierMatcher: The sequential filter pipeline that narrows a carrier
//     pool down to the candidates for one shipment request
//   - QuoteCalculator: The distance-and-surcharge price calculation producing
//     a quote with its line-item breakdown
//
// Both services are pure computations: they read aggregates and return
// results, leaving persistence and status transitions to the callers.
package services
