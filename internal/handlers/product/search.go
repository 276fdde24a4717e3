package product

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"banhmai_back_end/internal/database"
	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/search"
	"banhmai_back_end/internal/services"
)

const (
	recentSearchKeyPrefix = "search:recent:"
	recentSearchLimit     = 10
)

//
// 🔎 GET /api/products/search?q=...&sort=relevance|price_asc|price_desc|name_asc
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' parameter"})
		return
	}
	sortMode := c.DefaultQuery("sort", search.SortRelevance)

	ctx := c.Request.Context()

	if userID := c.GetString("user_id"); userID != "" {
		rememberSearch(c, userID, query)
	}

	// 1️⃣ Elasticsearch first.
	if results, err := services.SearchProductIndex(query); err == nil && len(results) > 0 {
		// The index scores by its own analyzers; the requested sort still applies.
		c.JSON(http.StatusOK, search.FilterAndSort(results, query, sortMode))
		return
	}

	// 2️⃣ In-memory fallback over the catalog. The document store has no
	// substring search, and combining an equality filter with an order on a
	// different field needs server-side indexing, so sorting happens here.
	cursor, err := database.Products().Find(ctx, bson.M{})
	if err != nil {
		log.Println("❌ search fallback failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search decode failed"})
		return
	}

	c.JSON(http.StatusOK, search.FilterAndSort(products, query, sortMode))
}

// rememberSearch keeps the user's recent terms in Redis: most recent first,
// deduplicated by exact match, capped at 10.
func rememberSearch(c *gin.Context, userID, term string) {
	ctx := c.Request.Context()
	key := recentSearchKeyPrefix + userID

	pipe := database.Redis.TxPipeline()
	pipe.LRem(ctx, key, 0, term)
	pipe.LPush(ctx, key, term)
	pipe.LTrim(ctx, key, 0, recentSearchLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Println("⚠️ recent-search update failed:", err)
	}
}

//
// 🕘 GET /api/products/search/recent
//
func GetRecentSearches(c *gin.Context) {
	userID := c.GetString("user_id")

	terms, err := database.Redis.LRange(c.Request.Context(), recentSearchKeyPrefix+userID, 0, recentSearchLimit-1).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history read failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": terms})
}
