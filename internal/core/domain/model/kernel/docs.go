// Package kernel contains the shared value objects of the freight matching
// domain: identifiers, geographic coordinates with great-circle distance,
// monetary amounts in integer cents, and country coverage sets.
//
// All types in this package are immutable and validated at construction.
// The zero value of a guarded type is invalid and fails Validate().
package kernel
