package user

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banhmai_back_end/internal/cart"
	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/orders"
	"banhmai_back_end/internal/services"
)

//
// 🛒 POST /api/orders — checkout, from the cart or a direct buy-now item
//
func Checkout(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		CustomerName  string            `json:"customer_name"`
		Phone         string            `json:"phone"`
		Address       string            `json:"address"`
		PaymentMethod string            `json:"payment_method"`
		BuyNow        *models.OrderItem `json:"buy_now,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "cod"
	}

	ctx := c.Request.Context()

	// Recipient defaults to the saved address when fields are omitted.
	if input.CustomerName == "" || input.Phone == "" || input.Address == "" {
		var addr models.Address
		if err := database.Addresses().FindOne(ctx, bson.M{"_id": userID}).Decode(&addr); err == nil {
			if input.CustomerName == "" {
				input.CustomerName = addr.Name
			}
			if input.Phone == "" {
				input.Phone = addr.Phone
			}
			if input.Address == "" {
				input.Address = addr.Detail
			}
		}
	}

	var items []models.OrderItem
	fromCart := input.BuyNow == nil
	if fromCart {
		lines, err := Carts.Get(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart read failed"})
			return
		}
		for _, l := range lines {
			items = append(items, models.OrderItem{
				ProductID: l.ProductID,
				Name:      l.Name,
				Price:     l.Price,
				Quantity:  l.Quantity,
				ImageURL:  l.ImageURL,
			})
		}
	} else {
		items = []models.OrderItem{*input.BuyNow}
	}

	order, err := Orders.Place(ctx, orders.PlacementInput{
		UserID:        userID,
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Address:       input.Address,
		Items:         items,
		PaymentMethod: input.PaymentMethod,
		FromCart:      fromCart,
	})
	if err != nil {
		if orders.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Println("❌ order placement failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order placement failed"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

//
// 📦 GET /api/orders — the signed-in customer's orders, newest first
//
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx := c.Request.Context()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := database.Orders().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Println("❌ order list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order list failed"})
		return
	}
	defer cursor.Close(ctx)

	orderList := []models.Order{}
	if err := cursor.All(ctx, &orderList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order decode failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orderList})
}

//
// 📦 GET /api/orders/:id
//
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	ctx := c.Request.Context()

	var order models.Order
	err := database.Orders().FindOne(ctx, bson.M{
		"_id":     orderID,
		"user_id": userID, // customers only see their own orders
	}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	// Proof images live in a private bucket; hand out a short-lived URL.
	if order.PaymentProofURL != "" {
		if object, ok := strings.CutPrefix(order.PaymentProofURL, os.Getenv("MINIO_BUCKET")+"/"); ok {
			if url, err := services.GenerateSignedURL(ctx, object, 15*time.Minute); err == nil {
				order.PaymentProofURL = url
			}
		}
	}

	c.JSON(http.StatusOK, order)
}

//
// ❌ POST /api/orders/:id/cancel — customer cancels a pending order
//
func CancelOrder(c *gin.Context) {
	transition(c, orders.StatusCancelled)
}

//
// ✅ POST /api/orders/:id/received — customer confirms receipt
//
func ConfirmReceipt(c *gin.Context) {
	transition(c, orders.StatusCompleted)
}

func transition(c *gin.Context, to orders.Status) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	order, err := Orders.Transition(c.Request.Context(), orderID, to, orders.ActorCustomer, userID)
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, orders.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "order belongs to another customer"})
	case errors.Is(err, orders.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		log.Println("❌ order transition failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order update failed"})
	default:
		c.JSON(http.StatusOK, order)
	}
}

//
// 🏦 GET /api/orders/:id/payment-qr — bank-transfer QR PNG
//
func GetPaymentQR(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	var order models.Order
	err := database.Orders().FindOne(c.Request.Context(), bson.M{"_id": orderID, "user_id": userID}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	png, err := services.PaymentQRCode(order)
	if err != nil {
		log.Println("❌ QR generation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "QR generation failed"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

//
// 🧾 POST /api/orders/:id/payment-proof — bank-transfer proof image upload
//
func UploadPaymentProof(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	ctx := c.Request.Context()

	var order models.Order
	if err := database.Orders().FindOne(ctx, bson.M{"_id": orderID, "user_id": userID}).Decode(&order); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	file, header, err := c.Request.FormFile("proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing proof image"})
		return
	}
	defer file.Close()

	objectName := fmt.Sprintf("payment-proofs/%s-%d", orderID, time.Now().Unix())
	path, err := services.UploadImage(ctx, objectName, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		log.Println("❌ proof upload failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	_, err = database.Orders().UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"payment_proof_url": path}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_proof_url": path})
}

//
// 💰 GET /api/cart/total — current running cart total
//
func GetCartTotal(c *gin.Context) {
	userID := c.GetString("user_id")

	lines, err := Carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart read failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": cart.Total(lines)})
}
