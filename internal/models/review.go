package models

import "time"

// Review carries the order it originated from as provenance. One review per
// (user, product) pair; the per-product aggregate lives on Product as
// rating_sum / rating_count and the displayed average is computed on read.
type Review struct {
	ID        string    `json:"id" bson:"_id"`
	ProductID string    `json:"product_id" bson:"product_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	OrderID   string    `json:"order_id" bson:"order_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Rating    int       `json:"rating" bson:"rating"` // 1-5
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
