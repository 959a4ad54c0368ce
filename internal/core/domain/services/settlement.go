package services

import (
	"time"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/payment"
	"wastehaul/internal/pkg/errs"
)

// rateCentsPerCubicMeter is the flat price list used for both the estimate
// at creation and the final charge after weigh-in.
var rateCentsPerCubicMeter = map[order.WasteType]int64{
	order.WasteMixed:    4500,
	order.WasteConcrete: 3000,
	order.WasteBrick:    3200,
	order.WasteTimber:   2500,
	order.WasteMetal:    2000,
}

// Settlement is a domain service that prices orders. The estimated charge is
// collected up front from the declared volume; after the recycling station
// weighs the load, Finalize recomputes the charge from the actual volume and
// settles the difference.
type Settlement struct{}

// NewSettlement creates a Settlement service.
func NewSettlement() Settlement {
	return Settlement{}
}

// EstimateCharge prices the declared load. The result is collected from the
// requester at order creation.
func (s Settlement) EstimateCharge(wasteType order.WasteType, declaredVolume int) (kernel.Money, error) {
	return s.price(wasteType, declaredVolume)
}

// Finalize settles a weighed order. The final charge is the rate applied to
// the actual volume; the difference against the collected estimate becomes a
// payment instruction:
//   - final below estimate: refund the difference, order completes normally
//   - final above estimate: charge the shortfall, order completes with adjustment
//   - exact match: no instruction, order completes normally
//
// The returned instruction is nil when no money needs to move. Callers must
// persist the order and the instruction in the same transaction.
func (s Settlement) Finalize(o *order.Order, now time.Time) (*payment.Instruction, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.ActualVolume() == nil {
		return nil, errs.NewValueIsRequiredError("actual volume")
	}

	finalCharge, err := s.price(o.WasteType(), *o.ActualVolume())
	if err != nil {
		return nil, err
	}

	estimated := o.EstimatedCharge()
	adjusted := !finalCharge.LessOrEqual(estimated)
	if err = o.Finalize(finalCharge, adjusted, now); err != nil {
		return nil, err
	}

	var amount kernel.Money
	direction := payment.DirectionRefund
	if adjusted {
		direction = payment.DirectionCharge
		amount, err = finalCharge.MustSub(estimated)
	} else {
		amount, err = estimated.MustSub(finalCharge)
	}
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, nil
	}

	return payment.NewInstruction(kernel.NewUUID(), o.ID(), amount, direction, now)
}

func (s Settlement) price(wasteType order.WasteType, volume int) (kernel.Money, error) {
	rate, ok := rateCentsPerCubicMeter[wasteType]
	if !ok {
		return kernel.Money{}, errs.NewValueIsInvalidError("waste type")
	}

	unit, err := kernel.NewMoney(rate)
	if err != nil {
		return kernel.Money{}, err
	}
	return unit.MulVolume(volume)
}
