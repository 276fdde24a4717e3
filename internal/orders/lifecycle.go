package orders

import "errors"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Actor is who is driving a transition. Role is decided once at sign-in and
// carried in the JWT; there is no string comparison at transition time.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorAdmin    Actor = "admin"
)

var (
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrNotOwner          = errors.New("order belongs to another customer")
	ErrOrderNotFound     = errors.New("order not found")
)

// transitions maps from-status -> to-status -> actors allowed to trigger it.
// completed and cancelled are terminal: no row leads out of them.
var transitions = map[Status]map[Status][]Actor{
	StatusPending: {
		StatusProcessing: {ActorAdmin},
		StatusCancelled:  {ActorCustomer, ActorAdmin},
	},
	StatusProcessing: {
		StatusCompleted: {ActorCustomer, ActorAdmin},
		StatusCancelled: {ActorAdmin},
	},
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether actor may move an order from one status to
// another. Placement is not a transition; orders are created as pending.
func CanTransition(from, to Status, actor Actor) bool {
	for _, a := range transitions[from][to] {
		if a == actor {
			return true
		}
	}
	return false
}
