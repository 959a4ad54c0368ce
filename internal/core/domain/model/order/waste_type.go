package order

import (
	"fmt"

	"wastehaul/internal/pkg/errs"
)

// WasteType classifies the declared construction waste. The settlement rate
// table is keyed by this type.
type WasteType string

const (
	WasteMixed    WasteType = "mixed"
	WasteConcrete WasteType = "concrete"
	WasteBrick    WasteType = "brick"
	WasteTimber   WasteType = "timber"
	WasteMetal    WasteType = "metal"
)

// Validate rejects unknown waste types.
func (w WasteType) Validate() error {
	switch w {
	case WasteMixed, WasteConcrete, WasteBrick, WasteTimber, WasteMetal:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("waste type",
			fmt.Errorf("%q is not a valid waste type", string(w)))
	}
}

// String returns the waste type name.
func (w WasteType) String() string {
	return string(w)
}
