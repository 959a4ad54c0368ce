package kernel

import (
	"fmt"
	"math"

	"wastehaul/internal/pkg/errs"
)

// Money is a value object representing a non-negative amount in cents.
// All charges, estimates, and refund/charge instructions in the system are
// Money values; arithmetic on amounts never touches floating point.
//
// The zero value is a valid amount of zero cents.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Negative amounts are rejected: refunds and additional charges are modeled
// as a positive amount plus a direction, never as signed money.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// LessOrEqual reports whether m is at most other.
func (m Money) LessOrEqual(other Money) bool {
	return m.cents <= other.cents
}

// MustSub returns m - other. The caller must have established m >= other;
// the constructor rejects the negative result otherwise.
func (m Money) MustSub(other Money) (Money, error) {
	return NewMoney(m.cents - other.cents)
}

// MulVolume scales a per-unit rate by a volume in whole cubic meters.
func (m Money) MulVolume(volume int) (Money, error) {
	if volume < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%d is negative", volume))
	}
	if volume > 0 && m.cents > math.MaxInt64/int64(volume) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents times %d overflows", m.cents, volume))
	}
	return NewMoney(m.cents * int64(volume))
}

// String formats the amount as a decimal currency string, e.g. "125.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
