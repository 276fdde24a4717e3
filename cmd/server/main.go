package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"banhmai_back_end/internal/config"
	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/events"
	"banhmai_back_end/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	warmupRedisCache()

	bus := events.NewBus()

	r := gin.Default()
	routes.RegisterRoutes(r, bus)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Bánh Mai server listening on port", port)
	r.Run(":" + port)
}

// warmupRedisCache establishes the Redis connection before the first request.
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Redis cache warmed up")
	}
}
