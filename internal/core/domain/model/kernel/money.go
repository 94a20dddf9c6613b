package kernel

import (
	"fmt"
	"math"
)

// Currency is the ISO currency code all monetary amounts are denominated in.
// The engine is single-currency; the code travels with persisted quotes so a
// future multi-currency migration has an anchor.
const Currency = "EUR"

// Money represents a monetary amount as an integer count of cents.
// Storing minor units keeps arithmetic exact: a sum of rounded line items
// equals the stored total without floating point drift.
//
// The zero value is a valid 0.00 amount.
type Money struct {
	cents int64
}

// MoneyFromCents creates a Money from an integer number of cents.
func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromFloat creates a Money from a major-unit amount, rounding to the
// nearest cent (half away from zero).
func MoneyFromFloat(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in major units. Intended for display and
// serialization only; arithmetic stays in cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Percent returns the given percentage of the amount, rounded to the nearest
// cent (half away from zero). Percent(20) of 600.00 is exactly 120.00.
func (m Money) Percent(percent float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * percent / 100))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// LessThan reports whether the amount is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "600.00".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
