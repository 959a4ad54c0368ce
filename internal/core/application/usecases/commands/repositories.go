// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"wastehaul/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrganizationRepoFactory provides access to the organization repository within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// CommunityRepoFactory provides access to the community repository within a transaction.
	CommunityRepoFactory interface {
		CommunityRepository() ports.CommunityRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// OutboxRepoFactory provides access to the payment outbox within a transaction.
	OutboxRepoFactory interface {
		PaymentOutboxRepository() ports.PaymentOutboxRepository
	}

	// OrderUoW manages transactions for actor-driven order mutations.
	// Account and organization access is needed to resolve the acting
	// identity inside the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrganizationRepoFactory
		CommunityRepoFactory
		AccountRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FleetUoW manages transactions that touch the transport fleet alongside
	// an order: crew assignment and the driver's progress transitions.
	FleetUoW interface {
		TxManager
		OrderRepoFactory
		OrganizationRepoFactory
		AccountRepoFactory
		VehicleRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// DispatchUoW manages transactions for the automatic dispatch pass.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		OrganizationRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// SettlementUoW manages transactions that finalize weighed orders and
	// record their payment instructions atomically.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// OutboxUoW manages transactions for payment instruction delivery.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
