package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/cart"
	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
)

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	lines, err := Carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart read failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": cart.Total(lines)})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	ctx := c.Request.Context()

	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": input.ProductID}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	lines, err := Carts.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart read failed"})
		return
	}

	lines, err = cart.Add(lines, userID, product, input.Quantity)
	switch {
	case errors.Is(err, cart.ErrNotSignedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case errors.Is(err, cart.ErrOutOfStock), errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
		return
	}

	if err := Carts.Save(ctx, userID, lines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": cart.Total(lines)})
}

//
// 🟡 PATCH /api/cart/:productId
//
func UpdateCartQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	var input struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	lines, err := Carts.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart read failed"})
		return
	}

	lines = cart.UpdateQuantity(lines, productID, input.Delta)
	if err := Carts.Save(ctx, userID, lines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": cart.Total(lines)})
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	ctx := c.Request.Context()
	lines, err := Carts.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart read failed"})
		return
	}

	lines = cart.Remove(lines, productID)
	if err := Carts.Save(ctx, userID, lines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": cart.Total(lines)})
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := Carts.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart clear failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
