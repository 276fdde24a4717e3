package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/reviews"
)

//
// ⭐ POST /api/products/:id/reviews
//
func CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("id")

	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating and comment are required"})
		return
	}

	ctx := c.Request.Context()

	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Err(); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	userName := displayName(c)

	review, err := Reviews.Create(ctx, userID, userName, productID, input.Rating, input.Comment)
	switch {
	case errors.Is(err, reviews.ErrInvalidRating), errors.Is(err, reviews.ErrCommentTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, reviews.ErrNotPurchased):
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only review products from your completed orders"})
	case errors.Is(err, reviews.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": "you already reviewed this product"})
	case err != nil:
		log.Println("❌ review creation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "review creation failed"})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "review created", "review": review})
	}
}

func displayName(c *gin.Context) string {
	userID := c.GetString("user_id")

	var u models.User
	err := database.Users().FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&u)
	if err != nil || u.Name == "" {
		return "Khách hàng"
	}
	return u.Name
}
