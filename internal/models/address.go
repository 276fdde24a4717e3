package models

import "time"

// Address is one-per-user: the document id is the user id and each save
// overwrites the previous one.
type Address struct {
	UserID    string    `json:"user_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	Detail    string    `json:"detail" bson:"detail"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
