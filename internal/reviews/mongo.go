package reviews

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/orders"
)

type MongoOrderReader struct {
	Orders *mongo.Collection
}

func (r *MongoOrderReader) CompletedByUser(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := r.Orders.Find(ctx, bson.M{
		"user_id": userID,
		"status":  string(orders.StatusCompleted),
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Order
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

type MongoReviewStore struct {
	Reviews *mongo.Collection
}

func (s *MongoReviewStore) Exists(ctx context.Context, userID, productID string) (bool, error) {
	err := s.Reviews.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MongoReviewStore) Insert(ctx context.Context, r models.Review) error {
	_, err := s.Reviews.InsertOne(ctx, r)
	return err
}

// MongoRatingStore bumps the running aggregate atomically on the product doc.
type MongoRatingStore struct {
	Products *mongo.Collection
}

func (s *MongoRatingStore) AddRating(ctx context.Context, productID string, rating int) error {
	_, err := s.Products.UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$inc": bson.M{"rating_sum": rating, "rating_count": 1}},
	)
	return err
}
