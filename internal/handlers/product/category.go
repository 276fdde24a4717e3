package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banhmai_back_end/internal/catalog"
	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
)

//
// 🗂 GET /api/categories
//
func GetCategories(c *gin.Context) {
	ctx := c.Request.Context()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := database.Categories().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category list failed"})
		return
	}
	list := []models.Category{}
	if err := cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category decode failed"})
		return
	}

	c.JSON(http.StatusOK, list)
}

//
// 🗂 GET /api/categories/pages — the paged browse view model with the
// proportional scrollbar geometry the storefront grid renders against.
//
func GetCategoryPages(c *gin.Context) {
	ctx := c.Request.Context()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := database.Categories().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category list failed"})
		return
	}
	var list []models.Category
	if err := cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category decode failed"})
		return
	}

	viewportWidth, _ := strconv.ParseFloat(c.DefaultQuery("viewport_width", "360"), 64)
	containerWidth, _ := strconv.ParseFloat(c.DefaultQuery("container_width", "360"), 64)

	pages := catalog.Paginate(list, catalog.PageSize)
	metrics := catalog.ScrollMetrics{
		PageCount:      len(pages),
		ViewportWidth:  viewportWidth,
		ContainerWidth: containerWidth,
	}

	c.JSON(http.StatusOK, gin.H{
		"pages": pages,
		"scrollbar": gin.H{
			"thumb_length":     metrics.ThumbLength(),
			"max_thumb_travel": metrics.MaxThumbTravel(),
		},
	})
}
