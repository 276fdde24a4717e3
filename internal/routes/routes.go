package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"banhmai_back_end/internal/cart"
	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/events"
	adminhandlers "banhmai_back_end/internal/handlers/admin"
	producthandlers "banhmai_back_end/internal/handlers/product"
	userhandlers "banhmai_back_end/internal/handlers/user"
	"banhmai_back_end/internal/middleware"
	"banhmai_back_end/internal/orders"
	"banhmai_back_end/internal/reviews"
)

// RegisterRoutes wires the services over the connected databases and mounts
// the storefront and admin APIs.
func RegisterRoutes(r *gin.Engine, bus *events.Bus) {
	r.Use(cors.Default())

	carts := cart.NewStore(database.Redis)

	orderManager := &orders.Manager{
		Products: &orders.MongoProductStore{Products: database.Products()},
		Orders:   &orders.MongoOrderStore{Orders: database.Orders()},
		Carts:    carts,
		Bus:      bus,
		InTx:     orders.MongoTx(database.MongoClient),
	}

	reviewService := &reviews.Service{
		Orders:  &reviews.MongoOrderReader{Orders: database.Orders()},
		Reviews: &reviews.MongoReviewStore{Reviews: database.Reviews()},
		Ratings: &reviews.MongoRatingStore{Products: database.Products()},
	}

	userhandlers.Init(orderManager, carts, reviewService, bus)
	adminhandlers.Init(orderManager, bus)

	api := r.Group("/api")

	// --- public storefront ---
	api.POST("/auth/signup", userhandlers.SignUp)
	api.POST("/auth/signin", userhandlers.SignIn)
	api.GET("/products", producthandlers.GetAllProducts)
	api.GET("/products/search", producthandlers.SearchProducts)
	api.GET("/products/:id", producthandlers.GetProduct)
	api.GET("/products/:id/reviews", producthandlers.GetProductReviews)
	api.GET("/categories", producthandlers.GetCategories)
	api.GET("/categories/pages", producthandlers.GetCategoryPages)
	api.GET("/categories/:id/products", producthandlers.GetProductsByCategory)

	// --- signed-in customer ---
	auth := api.Group("", middleware.AuthRequired())
	auth.GET("/products/search/recent", producthandlers.GetRecentSearches)
	auth.GET("/cart", userhandlers.GetCart)
	auth.GET("/cart/total", userhandlers.GetCartTotal)
	auth.POST("/cart/add", userhandlers.AddToCart)
	auth.PATCH("/cart/:productId", userhandlers.UpdateCartQuantity)
	auth.DELETE("/cart/:productId", userhandlers.RemoveFromCart)
	auth.DELETE("/cart", userhandlers.ClearCart)
	auth.POST("/orders", userhandlers.Checkout)
	auth.GET("/orders", userhandlers.GetMyOrders)
	auth.GET("/orders/:id", userhandlers.GetOrderByID)
	auth.POST("/orders/:id/cancel", userhandlers.CancelOrder)
	auth.POST("/orders/:id/received", userhandlers.ConfirmReceipt)
	auth.GET("/orders/:id/payment-qr", userhandlers.GetPaymentQR)
	auth.POST("/orders/:id/payment-proof", userhandlers.UploadPaymentProof)
	auth.PUT("/address", userhandlers.SaveAddress)
	auth.GET("/address", userhandlers.GetAddress)
	auth.POST("/products/:id/reviews", userhandlers.CreateReview)
	auth.GET("/notifications", userhandlers.GetNotifications)
	auth.POST("/assistant/chat", userhandlers.Chat)

	// --- admin console ---
	adm := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	adm.POST("/products", adminhandlers.CreateProduct)
	adm.PUT("/products/:id", adminhandlers.UpdateProduct)
	adm.DELETE("/products/:id", adminhandlers.DeleteProduct)
	adm.POST("/products/:id/image", adminhandlers.UploadProductImage)
	adm.POST("/categories", adminhandlers.CreateCategory)
	adm.PUT("/categories/:id", adminhandlers.UpdateCategory)
	adm.DELETE("/categories/:id", adminhandlers.DeleteCategory)
	adm.GET("/orders", adminhandlers.ListOrders)
	adm.GET("/orders/feed", adminhandlers.OrderFeed)
	adm.POST("/orders/:id/confirm", adminhandlers.ConfirmOrder)
	adm.POST("/orders/:id/complete", adminhandlers.CompleteOrder)
	adm.POST("/orders/:id/cancel", adminhandlers.CancelOrder)
	adm.GET("/dashboard", adminhandlers.GetDashboard)
}
