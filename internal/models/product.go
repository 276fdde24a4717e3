package models

import "time"

// Product is a catalog document. Stock == nil means the product is made to
// order and never runs out; a finite stock is decremented at checkout.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Stock       *int      `json:"stock,omitempty" bson:"stock,omitempty"`
	CategoryID  string    `json:"category_id" bson:"category_id"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	RatingSum   int       `json:"-" bson:"rating_sum"`
	RatingCount int       `json:"review_count" bson:"rating_count"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

type Category struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	ImageURL  string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
