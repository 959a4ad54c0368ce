package services

import (
	"wastehaul/internal/core/domain/model/identity"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
)

// CanView is the read-side authorization boundary for orders. Every read
// path touching orders must consult it; it is not a display convenience.
//
// Rules:
//   - administrators see everything
//   - requesters see their own orders
//   - property members see orders whose community their organization
//     manages; non-primary members are narrowed to the communities their
//     membership permits
//   - transport members see orders assigned to their organization; drivers
//     without dispatch rights only see orders assigned to themselves
//   - recycling members see orders assigned to their station
//
// community is the resolved community of the order's address, nil when the
// address matched none. An unmatched order has no property-side visibility.
func CanView(actor identity.Actor, o *order.Order, community *organization.Community) bool {
	if actor.IsAdministrator() {
		return true
	}
	if actor.AccountID().IsEqual(o.RequesterID()) {
		return true
	}

	return canViewAsProperty(actor, o, community) ||
		canViewAsTransport(actor, o) ||
		canViewAsRecycling(actor, o)
}

func canViewAsProperty(actor identity.Actor, o *order.Order, community *organization.Community) bool {
	if o.CommunityID() == nil || community == nil {
		return false
	}

	for _, m := range actor.MembershipsOfKind(organization.KindProperty) {
		if !community.IsManagedBy(m.OrganizationID()) {
			continue
		}
		if m.IsPrimary() {
			return true
		}
		if m.CommunityID() != nil && m.CommunityID().IsEqual(*o.CommunityID()) {
			return true
		}
	}
	return false
}

func canViewAsTransport(actor identity.Actor, o *order.Order) bool {
	if o.TransportOrgID() == nil {
		return false
	}
	m, ok := actor.MembershipIn(*o.TransportOrgID())
	if !ok || m.Kind() != organization.KindTransport {
		return false
	}

	if m.IsPrimary() || m.SubRole() == organization.SubRoleDispatcher {
		return true
	}
	// drivers only see their own assignments
	return o.DriverID() != nil && o.DriverID().IsEqual(actor.AccountID())
}

func canViewAsRecycling(actor identity.Actor, o *order.Order) bool {
	if o.RecyclingOrgID() == nil {
		return false
	}
	m, ok := actor.MembershipIn(*o.RecyclingOrgID())
	return ok && m.Kind() == organization.KindRecycling
}
