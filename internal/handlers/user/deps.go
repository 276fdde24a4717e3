package user

import (
	"banhmai_back_end/internal/cart"
	"banhmai_back_end/internal/events"
	"banhmai_back_end/internal/orders"
	"banhmai_back_end/internal/reviews"
)

// Wired once at startup by routes.RegisterRoutes.
var (
	Orders  *orders.Manager
	Carts   *cart.Store
	Reviews *reviews.Service
	Bus     *events.Bus
)

func Init(m *orders.Manager, carts *cart.Store, rs *reviews.Service, bus *events.Bus) {
	Orders = m
	Carts = carts
	Reviews = rs
	Bus = bus
}
