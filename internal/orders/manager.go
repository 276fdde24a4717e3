package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"

	"banhmai_back_end/internal/cart"
	"banhmai_back_end/internal/events"
	"banhmai_back_end/internal/models"
)

// ProductStore is the inventory side of placement. DecrementStock must be
// atomic at the backing store: it never drives stock negative and two
// concurrent buyers cannot both take the last unit past zero.
type ProductStore interface {
	Get(ctx context.Context, id string) (models.Product, error)
	DecrementStock(ctx context.Context, id string, qty int) error
	RestoreStock(ctx context.Context, id string, qty int) error
}

type OrderStore interface {
	Insert(ctx context.Context, o models.Order) error
	Get(ctx context.Context, id string) (models.Order, error)
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error
}

// CartClearer empties a user's cart after a checkout that came from it.
type CartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// Manager runs order placement and status transitions. InTx, when set, wraps
// the placement and cancellation writes in a single storage transaction so
// the order insert and its stock decrements succeed or fail together.
type Manager struct {
	Products ProductStore
	Orders   OrderStore
	Carts    CartClearer
	Bus      *events.Bus
	InTx     func(ctx context.Context, fn func(ctx context.Context) error) error
}

type PlacementInput struct {
	UserID        string
	CustomerName  string
	Phone         string
	Address       string
	Items         []models.OrderItem
	PaymentMethod string
	FromCart      bool
}

var phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)

// ValidationError is a locally-detected rejection; no remote state has been
// touched when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (in PlacementInput) validate() error {
	if in.UserID == "" {
		return &ValidationError{Reason: "must sign in to place an order"}
	}
	if in.CustomerName == "" {
		return &ValidationError{Reason: "recipient name is required"}
	}
	if !phonePattern.MatchString(in.Phone) {
		return &ValidationError{Reason: "phone number must be 10-11 digits"}
	}
	if in.Address == "" {
		return &ValidationError{Reason: "delivery address is required"}
	}
	if len(in.Items) == 0 {
		return &ValidationError{Reason: "order has no items"}
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("invalid quantity for %s", it.Name)}
		}
	}
	return nil
}

// Place validates the input, creates the order as pending with its total
// computed from the snapshot lines, and decrements stock for every line.
// The order insert and the decrements run in one transaction when the store
// provides one; clearing the cart happens after commit and a failure there is
// logged, not rolled back into the order.
//
// Cart lines were snapshotted server-side when they were added; buy-now lines
// come straight from the client and are resolved against the catalog here, so
// a customer can never dictate the name or price of what they order.
func (m *Manager) Place(ctx context.Context, in PlacementInput) (models.Order, error) {
	if err := in.validate(); err != nil {
		return models.Order{}, err
	}

	if !in.FromCart {
		for i, it := range in.Items {
			p, err := m.Products.Get(ctx, it.ProductID)
			if err != nil {
				return models.Order{}, &ValidationError{Reason: fmt.Sprintf("product %s not found", it.ProductID)}
			}
			if p.Stock != nil && *p.Stock == 0 {
				return models.Order{}, &ValidationError{Reason: fmt.Sprintf("%s is out of stock", p.Name)}
			}
			in.Items[i] = models.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  it.Quantity,
				ImageURL:  p.ImageURL,
			}
		}
	}

	now := time.Now()
	order := models.Order{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		CustomerName:  in.CustomerName,
		Phone:         in.Phone,
		Address:       in.Address,
		Items:         in.Items,
		Total:         lineTotal(in.Items),
		Status:        string(StatusPending),
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := m.inTx(ctx, func(ctx context.Context) error {
		if err := m.Orders.Insert(ctx, order); err != nil {
			return err
		}
		for _, it := range order.Items {
			if err := m.Products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	if in.FromCart && m.Carts != nil {
		if err := m.Carts.Clear(ctx, in.UserID); err != nil {
			log.Printf("⚠️ cart not cleared for user %s after order %s: %v", in.UserID, order.ID, err)
		}
	}

	m.publish(order.ID)
	return order, nil
}

// Transition moves an order to a new status on behalf of an actor. Customers
// may only touch their own orders. Cancelling a not-yet-terminal order puts
// its line quantities back into stock in the same transaction as the status
// write. Only updated_at changes besides the status itself.
func (m *Manager) Transition(ctx context.Context, orderID string, to Status, actor Actor, actorUserID string) (models.Order, error) {
	order, err := m.Orders.Get(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if actor == ActorCustomer && order.UserID != actorUserID {
		return models.Order{}, ErrNotOwner
	}

	from := Status(order.Status)
	if !CanTransition(from, to, actor) {
		return models.Order{}, fmt.Errorf("%w: %s → %s by %s", ErrInvalidTransition, from, to, actor)
	}

	now := time.Now()
	err = m.inTx(ctx, func(ctx context.Context) error {
		if err := m.Orders.UpdateStatus(ctx, orderID, to, now); err != nil {
			return err
		}
		if to == StatusCancelled {
			for _, it := range order.Items {
				if err := m.Products.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	order.Status = string(to)
	order.UpdatedAt = now
	m.publish(order.ID)
	return order, nil
}

func (m *Manager) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.InTx == nil {
		return fn(ctx)
	}
	return m.InTx(ctx, fn)
}

func (m *Manager) publish(orderID string) {
	if m.Bus != nil {
		m.Bus.Publish(events.OrdersChanged, orderID)
	}
}

func lineTotal(items []models.OrderItem) float64 {
	lines := make([]models.CartItem, len(items))
	for i, it := range items {
		lines[i] = models.CartItem{Price: it.Price, Quantity: it.Quantity}
	}
	return cart.Total(lines)
}

// IsValidation reports whether err is a local validation rejection, useful
// for mapping to a 400 at the HTTP boundary.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
