package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderController struct {
	orderService OrderService
	logger       *zap.Logger
}

func NewOrderController(orderService OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

func (ctrl *OrderController) identity(c *gin.Context) (models.Identity, bool) {
	identity, ok := utils.CurrentIdentity(c)
	if !ok {
		utils.Fail(c, http.StatusUnauthorized, "Authentication required", nil)
	}
	return identity, ok
}

// @Summary Checkout cart
// @Description Convert a cart into an order for the authenticated customer and delete the cart
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Cart to check out"
// @Success 201 {object} models.Response{data=models.Order}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	identity, ok := ctrl.identity(c)
	if !ok {
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cartID, err := uuid.Parse(req.CartID)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, models.ErrMsgNoCart, nil)
		return
	}

	order, err := ctrl.orderService.Checkout(c.Request.Context(), identity, cartID)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Order placed successfully", order)
}

// @Summary List orders
// @Description Staff see every order, customers see their own
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.Order}
// @Failure 401 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	identity, ok := ctrl.identity(c)
	if !ok {
		return
	}

	orders, err := ctrl.orderService.ListOrders(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Orders retrieved successfully", orders)
}

// @Summary Get order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	identity, ok := ctrl.identity(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), identity, id)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Order retrieved successfully", order)
}

// @Summary Update payment status
// @Description Staff only
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderRequest true "New payment status"
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [patch]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order, err := ctrl.orderService.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Order updated successfully", order)
}
