package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banhmai_back_end/internal/models"
)

func intp(v int) *int { return &v }

func banhMi() models.Product {
	return models.Product{ID: "p1", Name: "Bánh Mì", Price: 20000, Stock: intp(10), ImageURL: "img/banhmi.jpg"}
}

func TestAddNewLineSnapshotsProduct(t *testing.T) {
	lines, err := Add(nil, "u1", banhMi(), 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "Bánh Mì", lines[0].Name)
	assert.Equal(t, 20000.0, lines[0].Price)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "img/banhmi.jpg", lines[0].ImageURL)
}

func TestAddMergesExistingLine(t *testing.T) {
	lines, err := Add(nil, "u1", banhMi(), 2)
	require.NoError(t, err)
	lines, err = Add(lines, "u1", banhMi(), 3)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddCapsAtFiniteStock(t *testing.T) {
	p := banhMi()
	p.Stock = intp(3)

	lines, err := Add(nil, "u1", p, 2)
	require.NoError(t, err)
	lines, err = Add(lines, "u1", p, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddUnlimitedStock(t *testing.T) {
	p := banhMi()
	p.Stock = nil

	lines, err := Add(nil, "u1", p, 99)
	require.NoError(t, err)
	assert.Equal(t, 99, lines[0].Quantity)
}

func TestAddRejections(t *testing.T) {
	_, err := Add(nil, "", banhMi(), 1)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	sold := banhMi()
	sold.Stock = intp(0)
	_, err = Add(nil, "u1", sold, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)

	_, err = Add(nil, "u1", banhMi(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateQuantityRefusesBelowOne(t *testing.T) {
	lines, _ := Add(nil, "u1", banhMi(), 1)
	before := Total(lines)

	lines = UpdateQuantity(lines, "p1", -1)

	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, before, Total(lines))
}

func TestUpdateQuantityAdjustsTotal(t *testing.T) {
	lines, _ := Add(nil, "u1", banhMi(), 1)
	lines = UpdateQuantity(lines, "p1", 2)

	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 60000.0, Total(lines))
}

func TestRemove(t *testing.T) {
	lines, _ := Add(nil, "u1", banhMi(), 2)
	other := models.Product{ID: "p2", Name: "Trà Sữa", Price: 25000}
	lines, _ = Add(lines, "u1", other, 1)

	lines = Remove(lines, "p1")
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
	assert.Equal(t, 25000.0, Total(lines))
}

func TestTotal(t *testing.T) {
	lines := []models.CartItem{
		{ProductID: "a", Price: 10000, Quantity: 2},
		{ProductID: "b", Price: 25000, Quantity: 1},
	}
	assert.Equal(t, 45000.0, Total(lines))

	// Missing or bad prices contribute nothing.
	lines = append(lines, models.CartItem{ProductID: "c", Price: -5, Quantity: 3})
	assert.Equal(t, 45000.0, Total(lines))

	assert.Equal(t, 0.0, Total(nil))
}
