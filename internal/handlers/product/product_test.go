package product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"banhmai_back_end/internal/database"
)

func reviewsRequest(productID string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: productID}}
	return w, c
}

func TestGetProductReviewsUnknownProduct(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown product", func(mt *mtest.T) {
		database.Mongo = mt.DB

		// Empty find result: the product lookup misses.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".products", mtest.FirstBatch))

		w, c := reviewsRequest("ghost")
		GetProductReviews(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetProductReviewsDerivedAverage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("known product", func(mt *mtest.T) {
		database.Mongo = mt.DB

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".products", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "p1"},
				{Key: "name", Value: "Bánh Mì"},
				{Key: "rating_sum", Value: 9},
				{Key: "rating_count", Value: 2},
			}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".reviews", mtest.FirstBatch),
		)

		w, c := reviewsRequest("p1")
		GetProductReviews(c)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			TotalReviews  int     `json:"total_reviews"`
			AverageRating float64 `json:"average_rating"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 2, body.TotalReviews)
		assert.Equal(t, 4.5, body.AverageRating)
	})
}
