package orders

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banhmai_back_end/internal/models"
)

// MongoProductStore mutates stock with single atomic updates. Decrement first
// tries the conditional path (stock >= qty) so concurrent buyers cannot both
// win the last unit; a leftover smaller stock is clamped to 0, never negative.
// Products without a stock field are unlimited and untouched.
type MongoProductStore struct {
	Products *mongo.Collection
}

func (s *MongoProductStore) Get(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := s.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, err
}

func (s *MongoProductStore) DecrementStock(ctx context.Context, id string, qty int) error {
	res, err := s.Products.UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Either unlimited stock (no field), already 0, or fewer than qty left.
	// Clamp a positive remainder to 0; the other cases are no-ops.
	_, err = s.Products.UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gt": 0}},
		bson.M{"$set": bson.M{"stock": 0}},
	)
	return err
}

func (s *MongoProductStore) RestoreStock(ctx context.Context, id string, qty int) error {
	// Only products that track stock get it back.
	_, err := s.Products.UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$exists": true}},
		bson.M{"$inc": bson.M{"stock": qty}},
	)
	return err
}

type MongoOrderStore struct {
	Orders *mongo.Collection
}

func (s *MongoOrderStore) Insert(ctx context.Context, o models.Order) error {
	_, err := s.Orders.InsertOne(ctx, o)
	return err
}

func (s *MongoOrderStore) Get(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := s.Orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error {
	res, err := s.Orders.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": updatedAt}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// MongoTx wraps fn in a multi-document transaction so the order insert and
// its stock decrements commit or abort together.
func MongoTx(client *mongo.Client) func(ctx context.Context, fn func(ctx context.Context) error) error {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		session, err := client.StartSession()
		if err != nil {
			return err
		}
		defer session.EndSession(ctx)

		_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			return nil, fn(sc)
		}, options.Transaction())
		return err
	}
}
