package admin

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/handlers/product"
	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/services"
)

//
// ➕ POST /api/admin/products
//
func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Name == "" || p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required and price must be non-negative"})
		return
	}
	if p.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required"})
		return
	}

	ctx := c.Request.Context()

	if err := database.Categories().FindOne(ctx, bson.M{"_id": p.CategoryID}).Err(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category not found"})
		return
	}

	p.ID = uuid.NewString()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.RatingSum = 0
	p.RatingCount = 0

	if _, err := database.Products().InsertOne(ctx, p); err != nil {
		log.Println("❌ product creation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product creation failed"})
		return
	}

	go services.IndexProduct(p)
	product.InvalidateCatalogCache(c)

	c.JSON(http.StatusCreated, p)
}

//
// ✏️ PUT /api/admin/products/:id
//
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
		CategoryID  *string  `json:"category_id"`
		ImageURL    *string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
			return
		}
		set["price"] = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}
		set["stock"] = *input.Stock
	}
	if input.CategoryID != nil {
		set["category_id"] = *input.CategoryID
	}
	if input.ImageURL != nil {
		set["image_url"] = *input.ImageURL
	}

	ctx := c.Request.Context()

	res, err := database.Products().UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product update failed"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&p); err == nil {
		go services.IndexProduct(p)
	}
	product.InvalidateCatalogCache(c)

	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

//
// 🗑 DELETE /api/admin/products/:id
//
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	res, err := database.Products().DeleteOne(c.Request.Context(), bson.M{"_id": productID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product deletion failed"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	go services.RemoveProductFromIndex(productID)
	product.InvalidateCatalogCache(c)

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

//
// 🖼 POST /api/admin/products/:id/image — multipart upload to object storage
//
func UploadProductImage(c *gin.Context) {
	productID := c.Param("id")
	ctx := c.Request.Context()

	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Err(); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image"})
		return
	}
	defer file.Close()

	objectName := fmt.Sprintf("products/%s-%d", productID, time.Now().Unix())
	path, err := services.UploadImage(ctx, objectName, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		log.Println("❌ image upload failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	_, err = database.Products().UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$set": bson.M{"image_url": path, "updated_at": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "product update failed"})
		return
	}
	product.InvalidateCatalogCache(c)

	c.JSON(http.StatusOK, gin.H{"image_url": path})
}
