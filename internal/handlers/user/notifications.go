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
// 🔔 GET /api/notifications?since=RFC3339 — polled by the client
//
func GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := bson.M{"user_id": userID}
	if since := c.Query("since"); since != "" {
		ts, err := time.Parse(time.RFC3339, since)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since timestamp"})
			return
		}
		filter["created_at"] = bson.M{"$gt": ts}
	}

	ctx := c.Request.Context()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(50)

	cursor, err := database.Notifications().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "notification read failed"})
		return
	}
	defer cursor.Close(ctx)

	list := []models.Notification{}
	if err := cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "notification decode failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": list})
}
