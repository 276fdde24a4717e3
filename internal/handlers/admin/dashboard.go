package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/orders"
)

//
// 📊 GET /api/admin/dashboard — order counts per status and completed revenue
//
func GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	counts := gin.H{}
	for _, status := range []orders.Status{
		orders.StatusPending, orders.StatusProcessing, orders.StatusCompleted, orders.StatusCancelled,
	} {
		n, err := database.Orders().CountDocuments(ctx, bson.M{"status": string(status)})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard query failed"})
			return
		}
		counts[string(status)] = n
	}

	cursor, err := database.Orders().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"status": string(orders.StatusCompleted)}},
		{"$group": bson.M{"_id": nil, "revenue": bson.M{"$sum": "$total"}}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard query failed"})
		return
	}
	defer cursor.Close(ctx)

	var revenue float64
	var row struct {
		Revenue float64 `bson:"revenue"`
	}
	if cursor.Next(ctx) && cursor.Decode(&row) == nil {
		revenue = row.Revenue
	}

	productCount, _ := database.Products().CountDocuments(ctx, bson.M{})

	c.JSON(http.StatusOK, gin.H{
		"orders":   counts,
		"revenue":  revenue,
		"products": productCount,
	})
}
