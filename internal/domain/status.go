// internal/domain/status.go
package domain

// AccountStatus is shared by users, establishments, delivery agents and staff.
type AccountStatus string

const (
	StatusPending   AccountStatus = "pending"
	StatusActive    AccountStatus = "active"
	StatusInactive  AccountStatus = "inactive"
	StatusSuspended AccountStatus = "suspended"
)

var accountTransitions = map[AccountStatus][]AccountStatus{
	StatusPending:   {StatusActive, StatusInactive},
	StatusActive:    {StatusInactive, StatusSuspended},
	StatusInactive:  {StatusActive},
	StatusSuspended: {StatusActive},
}

func (s AccountStatus) String() string { return string(s) }

func (s AccountStatus) IsValid() bool {
	_, ok := accountTransitions[s]
	return ok
}

func (s AccountStatus) CanTransitionTo(next AccountStatus) bool {
	for _, t := range accountTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Actions lists the statuses a moderator may move s to.
func (s AccountStatus) Actions() []AccountStatus {
	out := make([]AccountStatus, len(accountTransitions[s]))
	copy(out, accountTransitions[s])
	return out
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderReadyForPickup OrderStatus = "ready_for_pickup"
	OrderPickedUp       OrderStatus = "picked_up"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

var orderLifecycle = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReadyForPickup,
	OrderPickedUp,
	OrderDelivered,
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	return s == OrderCancelled || s.rank() >= 0
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func (s OrderStatus) rank() int {
	for i, v := range orderLifecycle {
		if v == s {
			return i
		}
	}
	return -1
}

// CanTransitionTo allows forward moves through the lifecycle and
// cancellation of any order that has not reached a terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.IsValid() || s.IsTerminal() {
		return false
	}
	if next == OrderCancelled {
		return true
	}
	r := next.rank()
	return r > s.rank()
}
