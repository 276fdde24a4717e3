package reviews

import (
	"context"
	"errors"
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"banhmai_back_end/internal/models"
)

const minCommentLength = 10

var (
	ErrNotPurchased    = errors.New("product was never purchased in a completed order")
	ErrAlreadyReviewed = errors.New("product already reviewed by this user")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentTooShort = errors.New("comment is too short")
)

// OrderReader lists a user's completed orders; eligibility is checked by
// scanning their item snapshots.
type OrderReader interface {
	CompletedByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type ReviewStore interface {
	Exists(ctx context.Context, userID, productID string) (bool, error)
	Insert(ctx context.Context, r models.Review) error
}

// RatingStore maintains the per-product aggregate as a running sum and count;
// the displayed average is derived on read, so rounding never accumulates.
type RatingStore interface {
	AddRating(ctx context.Context, productID string, rating int) error
}

type Service struct {
	Orders  OrderReader
	Reviews ReviewStore
	Ratings RatingStore
}

// Create validates the review, checks purchase provenance and the one-review-
// per-(user,product) rule, then persists it and bumps the product aggregate.
// Rejections happen before any write.
func (s *Service) Create(ctx context.Context, userID, userName, productID string, rating int, comment string) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, ErrInvalidRating
	}
	if utf8.RuneCountInString(comment) < minCommentLength {
		return models.Review{}, ErrCommentTooShort
	}

	completed, err := s.Orders.CompletedByUser(ctx, userID)
	if err != nil {
		return models.Review{}, err
	}
	orderID := ""
	for _, o := range completed {
		for _, it := range o.Items {
			if it.ProductID == productID {
				orderID = o.ID
				break
			}
		}
		if orderID != "" {
			break
		}
	}
	if orderID == "" {
		return models.Review{}, ErrNotPurchased
	}

	exists, err := s.Reviews.Exists(ctx, userID, productID)
	if err != nil {
		return models.Review{}, err
	}
	if exists {
		return models.Review{}, ErrAlreadyReviewed
	}

	review := models.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		OrderID:   orderID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.Reviews.Insert(ctx, review); err != nil {
		return models.Review{}, err
	}
	if err := s.Ratings.AddRating(ctx, productID, rating); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// DisplayAverage rounds the running mean to one decimal for presentation.
// Only the displayed value is rounded; the stored sum and count stay exact.
func DisplayAverage(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}
