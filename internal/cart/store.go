package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"banhmai_back_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour

// Store keeps each user's cart in Redis as a JSON array under cart:<userID>.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(userID string) string {
	return "cart:" + userID
}

func (s *Store) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	data, err := s.rdb.Get(ctx, key(userID)).Result()
	if err == redis.Nil || data == "" {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.CartItem
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Store) Save(ctx context.Context, userID string, lines []models.CartItem) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(userID), data, cartTTL).Err()
}

// Clear removes the whole cart, used after a checkout that came from it.
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}
