// Package shipment contains the shipment request aggregate: the customer's
// ask to move cargo from a pickup to a delivery location.
//
// A request carries a mode-specific cargo descriptor (packages, loading
// meters, or a vehicle booking), equipment requirements, an optional geocoded
// route with country codes, and an upstream billing distance. Its lifecycle
// status moves New -> Matching -> Matched -> InTransit -> Delivered, with
// Cancelled reachable from any non-terminal state.
package shipment
