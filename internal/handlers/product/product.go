package product

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/reviews"
)

const catalogCacheKey = "products:all"

// productView adds the derived display rating to a catalog document.
type productView struct {
	models.Product
	AverageRating float64 `json:"average_rating"`
}

func withRating(p models.Product) productView {
	return productView{Product: p, AverageRating: reviews.DisplayAverage(p.RatingSum, p.RatingCount)}
}

//
// 🥖 GET /api/products — Redis-cached catalog
//
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if val, err := database.Redis.Get(ctx, catalogCacheKey).Result(); err == nil && val != "" {
		var cached []productView
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	cursor, err := database.Products().Find(ctx, bson.M{})
	if err != nil {
		log.Println("❌ product list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product list failed"})
		return
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product decode failed"})
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, withRating(p))
	}

	if data, err := json.Marshal(views); err == nil {
		database.Redis.Set(ctx, catalogCacheKey, data, time.Hour)
	}

	c.JSON(http.StatusOK, views)
}

// InvalidateCatalogCache drops the cached catalog after an admin write.
func InvalidateCatalogCache(c *gin.Context) {
	database.Redis.Del(c.Request.Context(), catalogCacheKey)
}

//
// 🥖 GET /api/products/:id
//
func GetProduct(c *gin.Context) {
	var p models.Product
	err := database.Products().FindOne(c.Request.Context(), bson.M{"_id": c.Param("id")}).Decode(&p)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, withRating(p))
}

//
// 🥖 GET /api/categories/:id/products
//
func GetProductsByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	cursor, err := database.Products().Find(ctx, bson.M{"category_id": c.Param("id")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product list failed"})
		return
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product decode failed"})
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, withRating(p))
	}
	c.JSON(http.StatusOK, views)
}

//
// ⭐ GET /api/products/:id/reviews
//
func GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	ctx := c.Request.Context()

	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cursor, err := database.Reviews().Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "review read failed"})
		return
	}
	list := []models.Review{}
	if err := cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "review decode failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        list,
		"total_reviews":  p.RatingCount,
		"average_rating": reviews.DisplayAverage(p.RatingSum, p.RatingCount),
	})
}
