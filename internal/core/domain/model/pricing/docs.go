// Package pricing contains the Rule aggregate: per-vehicle-type rates,
// minimum prices and surcharge percentages used by the quote calculator.
package pricing
