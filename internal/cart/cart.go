package cart

import (
	"errors"
	"math"

	"banhmai_back_end/internal/models"
)

var (
	ErrNotSignedIn     = errors.New("must sign in to use the cart")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Add merges quantity into an existing line for the same product or appends a
// new line snapshotting the product's current name, price and image. The line
// quantity never exceeds a finite stock.
func Add(lines []models.CartItem, userID string, p models.Product, quantity int) ([]models.CartItem, error) {
	if userID == "" {
		return lines, ErrNotSignedIn
	}
	if quantity <= 0 {
		return lines, ErrInvalidQuantity
	}
	if p.Stock != nil && *p.Stock == 0 {
		return lines, ErrOutOfStock
	}

	for i := range lines {
		if lines[i].ProductID == p.ID {
			lines[i].Quantity = capQuantity(lines[i].Quantity+quantity, p.Stock)
			return lines, nil
		}
	}

	return append(lines, models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  capQuantity(quantity, p.Stock),
		ImageURL:  p.ImageURL,
	}), nil
}

func capQuantity(q int, stock *int) int {
	if stock != nil && q > *stock {
		return *stock
	}
	return q
}

// UpdateQuantity adjusts a line by delta. A change that would drop the
// quantity below 1 is a no-op; removing a line is an explicit Remove.
func UpdateQuantity(lines []models.CartItem, productID string, delta int) []models.CartItem {
	for i := range lines {
		if lines[i].ProductID == productID {
			if lines[i].Quantity+delta >= 1 {
				lines[i].Quantity += delta
			}
			break
		}
	}
	return lines
}

// Remove deletes the line for productID, if present.
func Remove(lines []models.CartItem, productID string) []models.CartItem {
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	return kept
}

// Total sums quantity*price over the lines. A missing or unparseable price
// contributes 0.
func Total(lines []models.CartItem) float64 {
	var total float64
	for _, l := range lines {
		price := l.Price
		if math.IsNaN(price) || price < 0 {
			price = 0
		}
		total += float64(l.Quantity) * price
	}
	return total
}
