package models

import "time"

type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	ImageURL  string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// Order is immutable after placement except for Status, UpdatedAt and the
// bank-transfer proof image. Total is computed once at checkout and never
// recalculated, even if product prices change later.
type Order struct {
	ID              string      `json:"id" bson:"_id"`
	UserID          string      `json:"user_id" bson:"user_id"`
	CustomerName    string      `json:"customer_name" bson:"customer_name"`
	Phone           string      `json:"phone" bson:"phone"`
	Address         string      `json:"address" bson:"address"`
	Items           []OrderItem `json:"items" bson:"items"`
	Total           float64     `json:"total" bson:"total"`
	Status          string      `json:"status" bson:"status"`
	PaymentMethod   string      `json:"payment_method" bson:"payment_method"`
	PaymentProofURL string      `json:"payment_proof_url,omitempty" bson:"payment_proof_url,omitempty"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}
