package organization

import (
	"fmt"

	"wastehaul/internal/pkg/errs"
)

// Kind distinguishes the three company tiers that take part in an order.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindProperty is a property management company owning communities.
	KindProperty

	// KindTransport is a transport company owning a vehicle fleet.
	KindTransport

	// KindRecycling is a recycling/disposal station performing weigh-ins.
	KindRecycling
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:   "unknown",
		KindProperty:  "property",
		KindTransport: "transport",
		KindRecycling: "recycling",
	}
}

// String returns the kind name, or "unknown" for invalid values.
func (k Kind) String() string {
	if s, ok := kindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k <= KindUnknown || k > KindRecycling {
		return errs.NewValueIsInvalidErrorWithCause("organization kind",
			fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}
