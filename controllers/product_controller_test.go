package controllers

import (
	"net/http"
	"testing"

	"storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newCatalogRouter(svc ProductService) *gin.Engine {
	products := NewProductController(svc, zap.NewNop())
	collections := NewCollectionController(svc, zap.NewNop())
	r := gin.New()
	r.GET("/products/:id", products.GetProduct)
	r.DELETE("/products/:id", products.DeleteProduct)
	r.DELETE("/collections/:id", collections.DeleteCollection)
	return r
}

func TestGetProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockProductService(mockCtrl)
	svc.EXPECT().GetProduct(gomock.Any(), int64(10)).Return((&models.Product{
		ID:         10,
		Title:      "Mug",
		UnitPrice:  decimal.RequireFromString("10"),
		Promotions: []models.Promotion{},
	}).WithTax(), nil)

	w := perform(newCatalogRouter(svc), http.MethodGet, "/products/10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "11", data["price_with_tax"])
}

func TestGuardedDeletesReturnMethodNotAllowed(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockProductService(mockCtrl)
	svc.EXPECT().DeleteProduct(gomock.Any(), int64(10)).Return(models.NewNotAllowed(models.ErrMsgProductInOrder))
	svc.EXPECT().DeleteCollection(gomock.Any(), int64(1)).Return(models.NewNotAllowed(models.ErrMsgCollectionInUse))

	r := newCatalogRouter(svc)

	w := perform(r, http.MethodDelete, "/products/10", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, models.ErrMsgProductInOrder, decodeEnvelope(t, w)["message"])

	w = perform(r, http.MethodDelete, "/collections/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, models.ErrMsgCollectionInUse, decodeEnvelope(t, w)["message"])
}

func TestDeleteProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockProductService(mockCtrl)
	svc.EXPECT().DeleteProduct(gomock.Any(), int64(10)).Return(nil)

	w := perform(newCatalogRouter(svc), http.MethodDelete, "/products/10", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
