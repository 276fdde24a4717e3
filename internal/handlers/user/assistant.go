package user

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/services"
)

//
// 💬 POST /api/assistant/chat
//
func Chat(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	ctx := c.Request.Context()

	cursor, err := database.Products().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog read failed"})
		return
	}
	var catalog []models.Product
	if err := cursor.All(ctx, &catalog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog read failed"})
		return
	}

	reply, err := services.Chat(ctx, input.Message, catalog)
	if err != nil {
		log.Println("❌ assistant call failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, reply)
}
