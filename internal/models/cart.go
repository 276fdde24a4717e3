package models

// CartItem snapshots name, price and image at the time the product was added,
// so the cart stays readable even if the catalog entry changes afterwards.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}
