package controllers

import (
	"net/http"
	"strings"
	"testing"

	"storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var buyer = models.Identity{UserID: 21, Email: "ana@example.com"}

func newOrderRouter(svc OrderService, identity *models.Identity) *gin.Engine {
	ctrl := NewOrderController(svc, zap.NewNop())
	r := gin.New()
	if identity != nil {
		r.Use(withIdentity(*identity))
	}
	r.POST("/orders", ctrl.Checkout)
	r.GET("/orders", ctrl.ListOrders)
	r.PATCH("/orders/:id", ctrl.UpdateOrder)
	return r
}

func TestCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockOrderService(mockCtrl)
	svc.EXPECT().Checkout(gomock.Any(), buyer, testCartID).
		Return((&models.Order{ID: 99, CustomerID: 4, PaymentStatus: models.PaymentPending}).Totalled(), nil)

	w := perform(newOrderRouter(svc, &buyer), http.MethodPost, "/orders",
		strings.NewReader(`{"cart_id": "`+testCartID.String()+`"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(99), data["id"])
	assert.Equal(t, "pending", data["payment_status"])
}

func TestCheckoutMalformedCartID(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockOrderService(mockCtrl)

	w := perform(newOrderRouter(svc, &buyer), http.MethodPost, "/orders", strings.NewReader(`{"cart_id": "nope"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrMsgNoCart, decodeEnvelope(t, w)["message"])
}

func TestCheckoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty cart", models.NewValidationError(models.ErrMsgCartEmpty), http.StatusBadRequest},
		{"no customer", models.NewNotFound(models.ErrMsgNoCustomer), http.StatusNotFound},
		{"already checked out", models.NewConflict(models.ErrMsgCheckedOut, nil), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			svc := NewMockOrderService(mockCtrl)
			svc.EXPECT().Checkout(gomock.Any(), buyer, testCartID).Return(nil, tt.err)

			w := perform(newOrderRouter(svc, &buyer), http.MethodPost, "/orders",
				strings.NewReader(`{"cart_id": "`+testCartID.String()+`"}`))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestCheckoutRequiresIdentity(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockOrderService(mockCtrl)

	w := perform(newOrderRouter(svc, nil), http.MethodPost, "/orders",
		strings.NewReader(`{"cart_id": "`+testCartID.String()+`"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockOrderService(mockCtrl)
	svc.EXPECT().ListOrders(gomock.Any(), buyer).Return([]models.Order{}, nil)

	w := perform(newOrderRouter(svc, &buyer), http.MethodGet, "/orders", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decodeEnvelope(t, w)["data"])
}

func TestUpdateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	svc := NewMockOrderService(mockCtrl)
	svc.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(99), models.PaymentComplete).
		Return(&models.Order{ID: 99, PaymentStatus: models.PaymentComplete}, nil)

	w := perform(newOrderRouter(svc, &buyer), http.MethodPatch, "/orders/99",
		strings.NewReader(`{"payment_status": "complete"}`))

	assert.Equal(t, http.StatusOK, w.Code)
}
