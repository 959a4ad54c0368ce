package services

import (
	"time"

	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/core/ports"
	"wastehaul/internal/pkg/errs"
)

// Dispatcher is a domain service that assigns a property company and a
// recycling station to a pending order.
//
// Business rules:
//   - Only active organizations of the matching kind are candidates
//   - Organizations that previously rejected the order are excluded
//   - One organization is picked from each pool by the configured policy
//   - Assignment of both companies is atomic: either the order moves to
//     dispatched with both set, or it stays pending
type Dispatcher struct {
	policy ports.DispatchPolicy
}

// NewDispatcher creates a Dispatcher using the given selection policy.
func NewDispatcher(policy ports.DispatchPolicy) (Dispatcher, error) {
	if policy == nil {
		return Dispatcher{}, errs.NewValueIsRequiredError("policy")
	}
	return Dispatcher{policy: policy}, nil
}

// Dispatch picks one property company and one recycling station for the
// order and moves it to dispatched.
//
// Returns NoCandidateAvailable when either pool is empty after filtering;
// the order is left pending so a later run can retry once candidates exist.
func (d Dispatcher) Dispatch(
	o *order.Order,
	properties []*organization.Organization,
	recyclers []*organization.Organization,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	propertyOrg, err := d.pick(o, properties, organization.KindProperty, "property")
	if err != nil {
		return err
	}
	recyclingOrg, err := d.pick(o, recyclers, organization.KindRecycling, "recycling")
	if err != nil {
		return err
	}

	return o.AssignCompanies(propertyOrg.ID(), recyclingOrg.ID(), now)
}

// pick filters the pool down to eligible candidates and delegates the final
// choice to the policy.
func (d Dispatcher) pick(
	o *order.Order,
	pool []*organization.Organization,
	kind organization.Kind,
	poolName string,
) (*organization.Organization, error) {
	eligible := make([]*organization.Organization, 0, len(pool))
	for _, org := range pool {
		if err := org.Validate(); err != nil {
			return nil, err
		}
		if org.Kind() != kind || !org.IsActive() {
			continue
		}
		if o.IsExcluded(org.ID()) {
			continue
		}
		eligible = append(eligible, org)
	}

	if len(eligible) == 0 {
		return nil, errs.NewNoCandidateAvailableError(poolName)
	}

	return d.policy.Select(eligible)
}
