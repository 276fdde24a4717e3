package user

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
)

//
// 🏠 PUT /api/address — one address per user, overwritten on each save
//
func SaveAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Name   string `json:"name" binding:"required"`
		Phone  string `json:"phone" binding:"required"`
		Detail string `json:"detail" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone and detail are required"})
		return
	}

	addr := models.Address{
		UserID:    userID,
		Name:      input.Name,
		Phone:     input.Phone,
		Detail:    input.Detail,
		UpdatedAt: time.Now(),
	}

	_, err := database.Addresses().ReplaceOne(c.Request.Context(),
		bson.M{"_id": userID}, addr, options.Replace().SetUpsert(true))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "address save failed"})
		return
	}

	c.JSON(http.StatusOK, addr)
}

//
// 🏠 GET /api/address
//
func GetAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	var addr models.Address
	err := database.Addresses().FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&addr)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no saved address"})
		return
	}

	c.JSON(http.StatusOK, addr)
}
