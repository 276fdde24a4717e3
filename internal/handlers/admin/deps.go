package admin

import (
	"banhmai_back_end/internal/events"
	"banhmai_back_end/internal/orders"
)

// Wired once at startup by routes.RegisterRoutes.
var (
	Orders *orders.Manager
	Bus    *events.Bus
)

func Init(m *orders.Manager, bus *events.Bus) {
	Orders = m
	Bus = bus
}
