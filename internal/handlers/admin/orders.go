package admin

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/orders"
	"banhmai_back_end/internal/utils"
)

//
// 📋 GET /api/admin/orders?status=pending
//
func ListOrders(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx := c.Request.Context()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := database.Orders().Find(ctx, filter, opts)
	if err != nil {
		log.Println("❌ order list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order list failed"})
		return
	}
	defer cursor.Close(ctx)

	list := []models.Order{}
	if err := cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order decode failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": list, "total": len(list)})
}

//
// ✅ POST /api/admin/orders/:id/confirm    (pending → processing)
// 🎉 POST /api/admin/orders/:id/complete   (processing → completed)
// ❌ POST /api/admin/orders/:id/cancel     (pending|processing → cancelled)
//
func ConfirmOrder(c *gin.Context)  { transition(c, orders.StatusProcessing) }
func CompleteOrder(c *gin.Context) { transition(c, orders.StatusCompleted) }
func CancelOrder(c *gin.Context)   { transition(c, orders.StatusCancelled) }

func transition(c *gin.Context, to orders.Status) {
	orderID := c.Param("id")

	order, err := Orders.Transition(c.Request.Context(), orderID, to, orders.ActorAdmin, c.GetString("user_id"))
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	case errors.Is(err, orders.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Println("❌ order transition failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order update failed"})
		return
	}

	notifyCustomer(c, order)
	c.JSON(http.StatusOK, order)
}

// notifyCustomer writes the in-app notification the storefront polls for and
// sends the status email. Both are best-effort after the transition.
func notifyCustomer(c *gin.Context, order models.Order) {
	ctx := c.Request.Context()

	notif := models.Notification{
		ID:        uuid.NewString(),
		UserID:    order.UserID,
		OrderID:   order.ID,
		Title:     notificationTitle(order.Status),
		Body:      "Order " + order.ID,
		CreatedAt: time.Now(),
	}
	if _, err := database.Notifications().InsertOne(ctx, notif); err != nil {
		log.Println("⚠️ notification write failed:", err)
	}

	var u models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&u); err == nil {
		go func() {
			if err := utils.SendOrderStatusEmail(order, u.Email, order.Status); err != nil {
				log.Println("⚠️ status email failed:", err)
			}
		}()
	}
}

func notificationTitle(status string) string {
	switch status {
	case string(orders.StatusProcessing):
		return "Your order is being prepared"
	case string(orders.StatusCompleted):
		return "Your order is complete"
	case string(orders.StatusCancelled):
		return "Your order was cancelled"
	default:
		return "Order update"
	}
}
