package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
)

//
// ➕ POST /api/admin/categories
//
func CreateCategory(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	cat := models.Category{
		ID:        uuid.NewString(),
		Name:      input.Name,
		ImageURL:  input.ImageURL,
		CreatedAt: time.Now(),
	}
	if _, err := database.Categories().InsertOne(c.Request.Context(), cat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category creation failed"})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

//
// ✏️ PUT /api/admin/categories/:id
//
func UpdateCategory(c *gin.Context) {
	var input struct {
		Name     *string `json:"name"`
		ImageURL *string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.ImageURL != nil {
		set["image_url"] = *input.ImageURL
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	res, err := database.Categories().UpdateOne(c.Request.Context(),
		bson.M{"_id": c.Param("id")}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category update failed"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category updated"})
}

//
// 🗑 DELETE /api/admin/categories/:id — products keep their dangling
// category reference on purpose; category lifecycle is independent.
//
func DeleteCategory(c *gin.Context) {
	res, err := database.Categories().DeleteOne(c.Request.Context(), bson.M{"_id": c.Param("id")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category deletion failed"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
