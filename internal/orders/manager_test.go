package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banhmai_back_end/internal/models"
)

// In-memory fakes with the same stock semantics as the Mongo store:
// decrement never goes negative, nil stock is unlimited.

type fakeProducts struct {
	stock map[string]*int
	info  map[string]models.Product
}

func (f *fakeProducts) Get(_ context.Context, id string) (models.Product, error) {
	s, ok := f.stock[id]
	if !ok {
		return models.Product{}, errors.New("product not found")
	}
	p := f.info[id]
	p.ID = id
	p.Stock = s
	return p, nil
}

func (f *fakeProducts) DecrementStock(_ context.Context, id string, qty int) error {
	if s := f.stock[id]; s != nil {
		if *s > qty {
			*s -= qty
		} else {
			*s = 0
		}
	}
	return nil
}

func (f *fakeProducts) RestoreStock(_ context.Context, id string, qty int) error {
	if s := f.stock[id]; s != nil {
		*s += qty
	}
	return nil
}

type fakeOrders struct {
	byID map[string]models.Order
}

func (f *fakeOrders) Insert(_ context.Context, o models.Order) error {
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOrders) Get(_ context.Context, id string) (models.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id string, status Status, updatedAt time.Time) error {
	o, ok := f.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = string(status)
	o.UpdatedAt = updatedAt
	f.byID[id] = o
	return nil
}

type fakeCart struct{ cleared []string }

func (f *fakeCart) Clear(_ context.Context, userID string) error {
	f.cleared = append(f.cleared, userID)
	return nil
}

func intp(v int) *int { return &v }

func newManager() (*Manager, *fakeProducts, *fakeOrders, *fakeCart) {
	products := &fakeProducts{
		stock: map[string]*int{
			"pa": intp(5),
			"pb": intp(1),
			"pu": nil, // unlimited
			"pz": intp(0),
		},
		info: map[string]models.Product{
			"pa": {Name: "Bánh Mì", Price: 10000, ImageURL: "img/banhmi.jpg"},
			"pb": {Name: "Bánh Kem", Price: 25000},
			"pu": {Name: "Trà Đá", Price: 5000},
			"pz": {Name: "Bánh Trung Thu", Price: 60000},
		},
	}
	orders := &fakeOrders{byID: map[string]models.Order{}}
	carts := &fakeCart{}
	return &Manager{Products: products, Orders: orders, Carts: carts}, products, orders, carts
}

func placement() PlacementInput {
	return PlacementInput{
		UserID:       "u1",
		CustomerName: "Nguyễn Văn A",
		Phone:        "0901234567",
		Address:      "12 Lê Lợi, Quận 1",
		Items: []models.OrderItem{
			{ProductID: "pa", Name: "Bánh Mì", Price: 10000, Quantity: 2},
			{ProductID: "pb", Name: "Bánh Kem", Price: 25000, Quantity: 1},
		},
		PaymentMethod: "cod",
		FromCart:      true,
	}
}

func TestPlaceComputesTotalAndDecrementsStock(t *testing.T) {
	m, products, orders, carts := newManager()

	order, err := m.Place(context.Background(), placement())
	require.NoError(t, err)

	assert.Equal(t, 45000.0, order.Total)
	assert.Equal(t, string(StatusPending), order.Status)
	assert.Equal(t, 3, *products.stock["pa"])
	assert.Equal(t, 0, *products.stock["pb"])
	assert.Equal(t, []string{"u1"}, carts.cleared)
	assert.Len(t, orders.byID, 1)
}

func TestPlaceClampsInsufficientStockAtZero(t *testing.T) {
	m, products, _, _ := newManager()

	in := placement()
	in.Items = []models.OrderItem{{ProductID: "pb", Name: "Bánh Kem", Price: 25000, Quantity: 3}}

	_, err := m.Place(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, *products.stock["pb"], "stock clamps at 0, never negative")
}

func TestPlaceUnlimitedStockUntouched(t *testing.T) {
	m, products, _, _ := newManager()

	in := placement()
	in.Items = []models.OrderItem{{ProductID: "pu", Name: "Trà Đá", Price: 5000, Quantity: 50}}

	_, err := m.Place(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, products.stock["pu"])
}

func TestPlaceBuyNowKeepsCart(t *testing.T) {
	m, _, _, carts := newManager()

	in := placement()
	in.FromCart = false

	_, err := m.Place(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, carts.cleared)
}

func TestPlaceBuyNowSnapshotsCatalogLine(t *testing.T) {
	m, products, _, _ := newManager()

	// The client-sent name and price are ignored; the catalog wins.
	in := placement()
	in.FromCart = false
	in.Items = []models.OrderItem{{ProductID: "pa", Name: "Bánh Giả", Price: 1, Quantity: 2}}

	order, err := m.Place(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Bánh Mì", order.Items[0].Name)
	assert.Equal(t, 10000.0, order.Items[0].Price)
	assert.Equal(t, "img/banhmi.jpg", order.Items[0].ImageURL)
	assert.Equal(t, 20000.0, order.Total)
	assert.Equal(t, 3, *products.stock["pa"])
}

func TestPlaceBuyNowRejectsUnknownProduct(t *testing.T) {
	m, products, orders, _ := newManager()

	in := placement()
	in.FromCart = false
	in.Items = []models.OrderItem{{ProductID: "ghost", Name: "Bánh Ma", Price: 1, Quantity: 10}}

	_, err := m.Place(context.Background(), in)
	assert.True(t, IsValidation(err), "expected validation rejection, got %v", err)
	assert.Empty(t, orders.byID)
	assert.Equal(t, 5, *products.stock["pa"])
}

func TestPlaceBuyNowRejectsOutOfStock(t *testing.T) {
	m, _, orders, _ := newManager()

	in := placement()
	in.FromCart = false
	in.Items = []models.OrderItem{{ProductID: "pz", Quantity: 1}}

	_, err := m.Place(context.Background(), in)
	assert.True(t, IsValidation(err), "expected validation rejection, got %v", err)
	assert.Empty(t, orders.byID)
}

func TestPlaceValidation(t *testing.T) {
	m, _, orders, _ := newManager()

	tests := []struct {
		name   string
		mutate func(*PlacementInput)
	}{
		{"missing name", func(in *PlacementInput) { in.CustomerName = "" }},
		{"missing address", func(in *PlacementInput) { in.Address = "" }},
		{"short phone", func(in *PlacementInput) { in.Phone = "12345" }},
		{"long phone", func(in *PlacementInput) { in.Phone = "012345678901" }},
		{"non-numeric phone", func(in *PlacementInput) { in.Phone = "09012345ab" }},
		{"no items", func(in *PlacementInput) { in.Items = nil }},
		{"anonymous", func(in *PlacementInput) { in.UserID = "" }},
	}
	for _, tt := range tests {
		in := placement()
		tt.mutate(&in)
		_, err := m.Place(context.Background(), in)
		assert.True(t, IsValidation(err), "%s: expected validation rejection, got %v", tt.name, err)
	}
	assert.Empty(t, orders.byID, "validation failures must not persist anything")
}

// failingProducts rejects the decrement for one product id, standing in for
// a write conflict mid-placement.
type failingProducts struct {
	*fakeProducts
	failOn string
}

func (f *failingProducts) DecrementStock(ctx context.Context, id string, qty int) error {
	if id == f.failOn {
		return errors.New("write conflict")
	}
	return f.fakeProducts.DecrementStock(ctx, id, qty)
}

func TestPlaceAbortsAtomicallyOnPartialFailure(t *testing.T) {
	m, products, orders, carts := newManager()
	m.Products = &failingProducts{fakeProducts: products, failOn: "pb"}

	// Snapshot-and-restore transaction: when fn fails, every write inside it
	// is discarded, like the Mongo session the real wiring uses.
	m.InTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		ordersBefore := make(map[string]models.Order, len(orders.byID))
		for id, o := range orders.byID {
			ordersBefore[id] = o
		}
		stockBefore := make(map[string]*int, len(products.stock))
		for id, s := range products.stock {
			if s == nil {
				stockBefore[id] = nil
				continue
			}
			v := *s
			stockBefore[id] = &v
		}

		if err := fn(ctx); err != nil {
			orders.byID = ordersBefore
			products.stock = stockBefore
			return err
		}
		return nil
	}

	// pa decrements fine, pb fails: the whole placement must vanish.
	_, err := m.Place(context.Background(), placement())
	require.Error(t, err)

	assert.Empty(t, orders.byID, "no order survives an aborted placement")
	assert.Equal(t, 5, *products.stock["pa"], "partial decrement rolled back")
	assert.Equal(t, 1, *products.stock["pb"])
	assert.Empty(t, carts.cleared, "cart only clears after a committed placement")
}

func TestTransitionHappyPaths(t *testing.T) {
	m, _, _, _ := newManager()
	placed, err := m.Place(context.Background(), placement())
	require.NoError(t, err)

	// pending → processing → completed, admin confirms then customer receives.
	o, err := m.Transition(context.Background(), placed.ID, StatusProcessing, ActorAdmin, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, string(StatusProcessing), o.Status)

	o, err = m.Transition(context.Background(), placed.ID, StatusCompleted, ActorCustomer, "u1")
	require.NoError(t, err)
	assert.Equal(t, string(StatusCompleted), o.Status)

	// Terminal: nothing moves out of completed.
	_, err = m.Transition(context.Background(), placed.ID, StatusProcessing, ActorAdmin, "admin-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCustomerCancelOwnPendingOrder(t *testing.T) {
	m, products, _, _ := newManager()
	placed, err := m.Place(context.Background(), placement())
	require.NoError(t, err)

	o, err := m.Transition(context.Background(), placed.ID, StatusCancelled, ActorCustomer, "u1")
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), o.Status)

	// Cancellation restores the decremented quantities.
	assert.Equal(t, 5, *products.stock["pa"])
	assert.Equal(t, 1, *products.stock["pb"])

	_, err = m.Transition(context.Background(), placed.ID, StatusPending, ActorAdmin, "admin-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCustomerCannotTouchForeignOrder(t *testing.T) {
	m, _, _, _ := newManager()
	placed, err := m.Place(context.Background(), placement())
	require.NoError(t, err)

	_, err = m.Transition(context.Background(), placed.ID, StatusCancelled, ActorCustomer, "someone-else")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestTransitionBumpsUpdatedAtOnly(t *testing.T) {
	m, _, orders, _ := newManager()
	placed, err := m.Place(context.Background(), placement())
	require.NoError(t, err)

	before := orders.byID[placed.ID]
	o, err := m.Transition(context.Background(), placed.ID, StatusProcessing, ActorAdmin, "admin-1")
	require.NoError(t, err)

	assert.False(t, o.UpdatedAt.Before(before.UpdatedAt))
	assert.Equal(t, before.Total, o.Total)
	assert.Equal(t, before.Items, o.Items)
	assert.Equal(t, before.CreatedAt, o.CreatedAt)
}
